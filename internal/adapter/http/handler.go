package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adrelay/internal/core/port"
)

// MetricsEngine records the outcome of watch requests. It is satisfied by
// *metrics.Metrics.
type MetricsEngine interface {
	RecordWatch(outcome string, amount int64, elapsed time.Duration)
}

// Options tunes optional parts of the handler.
type Options struct {
	// TrustProxy takes the client IP from True-Client-IP, X-Real-IP or
	// X-Forwarded-For. Enable only behind a proxy that sets them.
	TrustProxy bool
	// Metrics records watch outcomes. Nil disables recording.
	Metrics MetricsEngine
	// MetricsHandler is mounted on /metrics when set.
	MetricsHandler http.Handler
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc     port.AdUseCase
	logger  *slog.Logger
	metrics MetricsEngine
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The legacy
// unversioned paths stay registered for existing publisher integrations.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: opts.Metrics}
	if h.metrics == nil {
		h.metrics = noopMetrics{}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads/watch", h.handleWatchAd)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/export", h.handleExportCampaigns)
		r.Get("/analytics/export", h.handleExportViewers)
	})

	r.Get("/watchAds", h.handleWatchAd)
	r.Post("/add/campaigns", h.handleCreateCampaign)
	r.Get("/allCampaign", h.handleExportCampaigns)
	r.Get("/campaignAnalytics", h.handleExportViewers)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type noopMetrics struct{}

func (noopMetrics) RecordWatch(string, int64, time.Duration) {}
