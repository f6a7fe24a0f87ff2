// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/okian/statusboard/internal/domain/dashboard"
	"github.com/okian/statusboard/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Mount creates a dashboard and starts its automatic health fetch.
	Mount(ctx context.Context) (string, *dashboard.Dashboard, error)
	// Dashboard looks up a live mount.
	Dashboard(ctx context.Context, id string) (*dashboard.Dashboard, error)
	// Unmount removes a mount and cancels its fetches.
	Unmount(ctx context.Context, id string) error
	// MountCount reports the number of live mounts.
	MountCount() int
}

// Server wires HTTP routes for the dashboard.
type Server struct {
	deps    Dependencies
	logger  logger.Logger
	version string
	refresh int
	page    *template.Template

	healthHandler *HealthHandler
	statsHandler  *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		deps:          deps,
		logger:        logger.Discard(),
		version:       "dev",
		refresh:       1,
		page:          pageTemplate,
		healthHandler: NewHealthHandler(deps),
		statsHandler:  NewStatsHandler(statsProvider),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns a chi router with the standard middleware chain and every
// route registered.
func (s *Server) Handler() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)

	s.Register(r)
	return r
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.healthHandler.HandleHealth)
	r.Get("/metrics", s.healthHandler.HandleMetrics)
	r.Get("/stats", s.statsHandler.HandleStats)

	r.Get("/", s.handleMount)
	r.Route("/view/{id}", func(vr chi.Router) {
		vr.Get("/", s.handleView)
		vr.Post("/fetch", s.handleFetchForm)
	})

	r.Route("/api/view/{id}", func(ar chi.Router) {
		ar.Get("/", s.handleState)
		ar.Post("/fetch", s.handleFetchAPI)
		ar.Delete("/", s.handleUnmount)
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
