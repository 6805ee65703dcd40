package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/breeew/gemini-ext/internal/core"
	v1 "github.com/breeew/gemini-ext/internal/logic/v1"
	"github.com/breeew/gemini-ext/internal/response"
	"github.com/breeew/gemini-ext/pkg/errors"
	"github.com/breeew/gemini-ext/pkg/i18n"
	"github.com/breeew/gemini-ext/pkg/utils"
)

const REQUEST_ID_HEADER_KEY = "X-Request-Id"

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

// Cors allows every origin, the api is called from a browser extension.
func Cors() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Accept", "Accept-Language", "X-Requested-With")
	cfg.ExposeHeaders = []string{REQUEST_ID_HEADER_KEY}
	return cors.New(cfg)
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := utils.GenSpecIDStr()
		c.Set(v1.REQUEST_ID_CONTEXT_KEY, id)
		c.Header(REQUEST_ID_HEADER_KEY, id)
	}
}

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("access",
			slog.String("request_id", c.GetString(v1.REQUEST_ID_CONTEXT_KEY)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)))
	}
}

func UseLimit(core *core.Core, operation string, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	perMinute := core.Cfg().Limit.PerMinute
	return func(c *gin.Context) {
		if !core.UseLimiter(operation+":"+genKeyFunc(c), perMinute).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}
