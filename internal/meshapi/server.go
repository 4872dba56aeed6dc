package meshapi

import (
	"net/http"

	"github.com/yungbote/eduviz/internal/config"
	"github.com/yungbote/eduviz/internal/mesh"
	"github.com/yungbote/eduviz/internal/observability"
	"github.com/yungbote/eduviz/internal/platform/logger"
)

type Options struct {
	HTTP        config.HTTPConfig
	PreviewSize int
	Metrics     *observability.Metrics
}

type service struct {
	log         *logger.Logger
	registry    *mesh.Registry
	maxBytes    int64
	previewSize int
	metrics     *observability.Metrics
}

func NewServer(addr string, opts Options, log *logger.Logger, reg *mesh.Registry) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewHandler(opts, log, reg),
		ReadHeaderTimeout: opts.HTTP.ReadHeaderTimeout,
		IdleTimeout:       opts.HTTP.IdleTimeout,
	}
}

func NewHandler(opts Options, log *logger.Logger, reg *mesh.Registry) http.Handler {
	if reg == nil {
		reg = mesh.NewRegistry()
	}
	previewSize := opts.PreviewSize
	if previewSize <= 0 {
		previewSize = mesh.DefaultPreviewSize
	}
	s := &service{
		log:         log.With("service", "MeshAPI"),
		registry:    reg,
		maxBytes:    opts.HTTP.MaxRequestBytes,
		previewSize: previewSize,
		metrics:     opts.Metrics,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /v1/mesh", s.handleTypes)
	mux.HandleFunc("GET /v1/mesh/{type}", s.handleMesh)
	mux.HandleFunc("GET /v1/mesh/{type}/preview.png", s.handlePreview)

	var h http.Handler = mux
	h = recoverMiddleware(log)(h)
	h = accessLogMiddleware(log)(h)
	h = requestIDMiddleware()(h)

	return h
}
