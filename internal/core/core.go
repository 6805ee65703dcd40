package core

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/breeew/gemini-ext/internal/core/srv"
	"github.com/breeew/gemini-ext/pkg/image"
	"github.com/breeew/gemini-ext/pkg/utils"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	httpClient   *http.Client
	httpEngine   *gin.Engine
	materializer *image.Materializer

	metrics  *Metrics
	limiters *Limiters
}

// MustSetupCore wires the service from cfg. Extra opts are applied after the
// configured AI providers and may replace them.
func MustSetupCore(cfg CoreConfig, opts ...srv.ApplyFunc) *Core {
	cfg.SetDefaults()
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	utils.SetupIDWorker(1)

	core := &Core{
		cfg:          cfg,
		httpClient:   &http.Client{Timeout: time.Second * DEFAULT_HTTP_CLIENT_TIMEOUT},
		materializer: image.NewMaterializer(&http.Client{Timeout: cfg.Image.Timeout()}),
		metrics:      NewMetrics("gemext", "core"),
		limiters:     NewLimiters(),
	}

	core.httpEngine = gin.New()
	core.httpEngine.ContextWithFallback = true
	core.httpEngine.Use(gin.Recovery())

	core.srv = srv.SetupSrvs(append([]srv.ApplyFunc{srv.ApplyAI(cfg.AI)}, opts...)...)

	return core
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) HttpClient() *http.Client {
	return s.httpClient
}

func (s *Core) Materializer() *image.Materializer {
	return s.materializer
}

// ratelimit 代表每分钟允许的数量
func (s *Core) UseLimiter(key string, defaultRatelimit int) Limiter {
	return s.limiters.Use(key, defaultRatelimit)
}
