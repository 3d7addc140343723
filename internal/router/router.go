package router

import (
	"io/fs"
	"net/http"

	"cupcake-api/internal/handler"
	"cupcake-api/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router dispatches to.
type Handlers struct {
	Cupcake *handler.CupcakeHandler
	Home    *handler.HomeHandler
	Health  *handler.HealthHandler
}

// Options configures the cross-cutting concerns of the router.
type Options struct {
	APIKey   string
	Limiter  *middleware.ClientLimiter
	Registry *prometheus.Registry
	Static   fs.FS
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health and readiness (no authentication or rate limiting)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	var metrics *middleware.Metrics
	if opts.Registry != nil {
		metrics = middleware.NewMetrics(opts.Registry)
		mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	// Home page and its assets
	mux.HandleFunc("GET /{$}", h.Home.Home)
	if opts.Static != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(opts.Static)))
	}

	// Cupcake API
	mux.HandleFunc("GET /api/cupcakes", h.Cupcake.List)
	mux.HandleFunc("POST /api/cupcakes", h.Cupcake.Create)
	mux.HandleFunc("GET /api/cupcakes/{id}", h.Cupcake.Get)
	mux.HandleFunc("PATCH /api/cupcakes/{id}", h.Cupcake.Update)
	mux.HandleFunc("DELETE /api/cupcakes/{id}", h.Cupcake.Delete)

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS ->
	// RateLimit -> APIKeyAuth -> Metrics -> mux
	var handler http.Handler = mux
	if metrics != nil {
		handler = metrics.Instrument(handler)
	}
	handler = middleware.APIKeyAuth(opts.APIKey, logger)(handler)
	handler = middleware.RateLimit(opts.Limiter, metrics, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger, metrics)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
