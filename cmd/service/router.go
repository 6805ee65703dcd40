package service

import (
	"github.com/gin-gonic/gin"

	"github.com/breeew/gemini-ext/cmd/service/handler"
	"github.com/breeew/gemini-ext/cmd/service/middleware"
	"github.com/breeew/gemini-ext/internal/core"
)

func serve(core *core.Core) error {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	return core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return middleware.UseLimit(core, key, func(c *gin.Context) string {
			return c.ClientIP()
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.SetHTMLTemplate(handler.ReadmeTemplate())
	s.Engine.Use(middleware.I18n(), middleware.Cors(), middleware.RequestID(), middleware.AccessLog())

	s.Engine.GET("/metrics", gin.WrapH(s.Core.Metrics().Handler()))

	ask := s.Engine.Group("")
	if s.Core.Cfg().Limit.PerMinute > 0 {
		ask.Use(GetIPLimitBuilder(s.Core)("ask"))
	}
	{
		ask.GET("/", s.Ask)
		ask.POST("/", s.Ask)
	}
}
