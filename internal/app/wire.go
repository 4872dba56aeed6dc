package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/eduviz/internal/config"
	"github.com/yungbote/eduviz/internal/data/db"
	"github.com/yungbote/eduviz/internal/data/repos/animations"
	"github.com/yungbote/eduviz/internal/generator"
	"github.com/yungbote/eduviz/internal/http"
	httpH "github.com/yungbote/eduviz/internal/http/handlers"
	"github.com/yungbote/eduviz/internal/observability"
	"github.com/yungbote/eduviz/internal/platform/logger"
	"github.com/yungbote/eduviz/internal/realtime"
	"github.com/yungbote/eduviz/internal/realtime/bus"
)

type Repos struct {
	Animation animations.AnimationRepo
}

type Handlers struct {
	Health    *httpH.HealthHandler
	Generate  *httpH.GenerateHandler
	Animation *httpH.AnimationHandler
	Subject   *httpH.SubjectHandler
}

func wireRepos(dbs *db.Service, log *logger.Logger) Repos {
	if dbs == nil {
		return Repos{}
	}
	log.Info("Wiring repos...")
	return Repos{Animation: animations.NewAnimationRepo(dbs.DB(), log)}
}

func wireBus(cfg config.RedisConfig, log *logger.Logger) (bus.Bus, error) {
	if cfg.Addr == "" {
		return bus.NewLocalBus(), nil
	}
	b, err := bus.NewRedisBus(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init redis bus: %w", err)
	}
	log.Info("realtime bus on redis", "addr", cfg.Addr, "channel", cfg.Channel)
	return b, nil
}

func wireHandlers(
	log *logger.Logger,
	gen *generator.Generator,
	repos Repos,
	b bus.Bus,
	hub *realtime.SSEHub,
	metrics *observability.Metrics,
) Handlers {
	log.Info("Wiring handlers...")
	h := Handlers{
		Health:   httpH.NewHealthHandler(),
		Generate: httpH.NewGenerateHandler(log, gen, metrics),
		Subject:  httpH.NewSubjectHandler(),
	}
	if repos.Animation != nil {
		h.Animation = httpH.NewAnimationHandler(log, gen, repos.Animation, b, hub, metrics)
	}
	return h
}

func wireRouter(cfg *config.Config, log *logger.Logger, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	serviceName := ""
	if cfg.OTel.Enabled {
		serviceName = cfg.OTel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:              log,
		ServiceName:      serviceName,
		CORSOrigins:      cfg.HTTP.CORSOrigins,
		MaxRequestBytes:  cfg.HTTP.MaxRequestBytes,
		Metrics:          metrics,
		HealthHandler:    handlers.Health,
		GenerateHandler:  handlers.Generate,
		AnimationHandler: handlers.Animation,
		SubjectHandler:   handlers.Subject,
	})
}
