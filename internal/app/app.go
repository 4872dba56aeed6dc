package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/eduviz/internal/config"
	"github.com/yungbote/eduviz/internal/data/db"
	"github.com/yungbote/eduviz/internal/generator"
	"github.com/yungbote/eduviz/internal/mesh"
	"github.com/yungbote/eduviz/internal/meshapi"
	"github.com/yungbote/eduviz/internal/observability"
	"github.com/yungbote/eduviz/internal/platform/logger"
	"github.com/yungbote/eduviz/internal/realtime"
	"github.com/yungbote/eduviz/internal/realtime/bus"
)

type App struct {
	Log     *logger.Logger
	Cfg     *config.Config
	DB      *db.Service
	Repos   Repos
	Hub     *realtime.SSEHub
	Bus     bus.Bus
	Metrics *observability.Metrics
	Router  *gin.Engine
	Mesh    http.Handler

	apiServer  *http.Server
	meshServer *http.Server
}

func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	var dbs *db.Service
	if cfg.DB.Driver != config.DriverNone {
		var err error
		if dbs, err = db.Open(cfg.DB, log); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		if err := dbs.AutoMigrateAll(); err != nil {
			_ = dbs.Close()
			return nil, fmt.Errorf("db automigrate: %w", err)
		}
	} else {
		log.Warn("persistence disabled; animation endpoints are not served")
	}

	hub := realtime.NewSSEHub(log)
	b, err := wireBus(cfg.Redis, log)
	if err != nil {
		if dbs != nil {
			_ = dbs.Close()
		}
		return nil, err
	}

	reposet := wireRepos(dbs, log)
	gen := generator.New()
	handlerset := wireHandlers(log, gen, reposet, b, hub, metrics)
	router := wireRouter(cfg, log, handlerset, metrics)

	a := &App{
		Log:     log,
		Cfg:     cfg,
		DB:      dbs,
		Repos:   reposet,
		Hub:     hub,
		Bus:     b,
		Metrics: metrics,
		Router:  router,
	}
	a.apiServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}
	if cfg.Mesh.Enabled {
		a.meshServer = meshapi.NewServer(cfg.Mesh.Addr, meshapi.Options{
			HTTP:        cfg.HTTP,
			PreviewSize: cfg.Mesh.PreviewSize,
			Metrics:     metrics,
		}, log, mesh.NewRegistry())
		a.Mesh = a.meshServer.Handler
	}
	return a, nil
}

// Run serves the generation API and, when enabled, the mesh service until ctx is cancelled
// or either server fails. Shutdown is graceful within http.shutdown_timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.apiServer == nil {
		return fmt.Errorf("app not initialized")
	}

	otelShutdown := observability.InitOTel(ctx, a.Log, a.Cfg.Env, a.Cfg.OTel)
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		defer cancel()
		_ = otelShutdown(sctx)
	}()

	if err := a.Bus.StartForwarder(ctx, a.Hub.Broadcast); err != nil {
		return fmt.Errorf("start realtime forwarder: %w", err)
	}

	apiLn, err := listenWithRetry(a.Cfg.HTTP.Addr, a.Cfg.HTTP.PortRetries, a.Log)
	if err != nil {
		return err
	}
	var meshLn net.Listener
	if a.meshServer != nil {
		if meshLn, err = listenWithRetry(a.meshServer.Addr, a.Cfg.HTTP.PortRetries, a.Log); err != nil {
			_ = apiLn.Close()
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("generation API listening", "addr", apiLn.Addr().String())
		return serve(a.apiServer, apiLn)
	})
	if meshLn != nil {
		g.Go(func() error {
			a.Log.Info("mesh service listening", "addr", meshLn.Addr().String())
			return serve(a.meshServer, meshLn)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("shutting down servers")
		sctx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		defer cancel()
		err := a.apiServer.Shutdown(sctx)
		if a.meshServer != nil {
			err = errors.Join(err, a.meshServer.Shutdown(sctx))
		}
		return err
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Bus != nil {
		_ = a.Bus.Close()
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

func serve(srv *http.Server, ln net.Listener) error {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
