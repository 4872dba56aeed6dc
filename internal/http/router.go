package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/eduviz/internal/http/handlers"
	httpMW "github.com/yungbote/eduviz/internal/http/middleware"
	"github.com/yungbote/eduviz/internal/observability"
	"github.com/yungbote/eduviz/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	ServiceName     string
	CORSOrigins     []string
	MaxRequestBytes int64
	Metrics         *observability.Metrics

	HealthHandler    *httpH.HealthHandler
	GenerateHandler  *httpH.GenerateHandler
	AnimationHandler *httpH.AnimationHandler
	SubjectHandler   *httpH.SubjectHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.MaxBodyBytes(cfg.MaxRequestBytes))
	if cfg.Metrics != nil {
		r.Use(httpMW.Metrics(cfg.Metrics))
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	// Generation
	if cfg.GenerateHandler != nil {
		r.POST("/generate", cfg.GenerateHandler.Generate)
	}

	api := r.Group("/api")
	{
		if cfg.SubjectHandler != nil {
			api.GET("/subjects", cfg.SubjectHandler.List)
		}

		// Animations (absent when persistence is disabled)
		if cfg.AnimationHandler != nil {
			api.POST("/animations", cfg.AnimationHandler.Create)
			api.GET("/animations", cfg.AnimationHandler.List)
			api.GET("/animations/:id", cfg.AnimationHandler.Get)
			api.PUT("/animations/:id", cfg.AnimationHandler.Update)
			api.DELETE("/animations/:id", cfg.AnimationHandler.Delete)
			api.GET("/animations/:id/events", cfg.AnimationHandler.Events)
		}
	}

	return r
}
