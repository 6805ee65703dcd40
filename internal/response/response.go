package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/breeew/gemini-ext/pkg/errors"
	"github.com/breeew/gemini-ext/pkg/i18n"
)

const LOCALIZER_CONTEXT_KEY = "response.localizer"

// Body is the json envelope of every answer. Error is only set on failures.
type Body struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LOCALIZER_CONTEXT_KEY, l)
	}
}

func APISuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Body{Message: message})
}

func APIError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	msg := i18n.ERROR_INTERNAL
	if ce, ok := errors.As(err); ok {
		code = ce.StatusCode()
		msg = ce.Message()
	}

	slog.Error("request failed", slog.String("path", c.Request.URL.Path), slog.Int("code", code), slog.String("error", err.Error()))

	c.AbortWithStatusJSON(code, Body{
		Message: "",
		Error:   localize(c, msg),
	})
}

func localize(c *gin.Context, msg string) string {
	v, exist := c.Get(LOCALIZER_CONTEXT_KEY)
	if !exist {
		return msg
	}
	l, ok := v.(*i18n.Localizer)
	if !ok {
		return msg
	}
	return l.Localize(c.GetHeader("Accept-Language"), msg)
}
