package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vokinneberg/ctbto-agent/internal/metrics"
)

// NewRouter wires the handlers. A zero timeout leaves requests bounded only by the client.
func NewRouter(h *Handler, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", HealthHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if timeout > 0 {
			r.Use(middleware.Timeout(timeout))
		}
		r.Post("/query", h.QueryHandler)
		r.Post("/query/simple", h.SimpleQueryHandler)
		r.Post("/classify", h.ClassifyHandler)
	})

	return r
}
