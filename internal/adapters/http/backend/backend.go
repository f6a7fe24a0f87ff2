// Package backend implements the sample backend API the dashboard probes.
package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/okian/statusboard/internal/adapters/http/swagger"
	"github.com/okian/statusboard/pkg/logger"
	"github.com/okian/statusboard/pkg/metrics"
)

// Service identity reported by /info.
const (
	ServiceName = "Simple Backend API"
	Version     = "1.0.0"
	Framework   = "chi"
)

// timestampLayout matches an ISO 8601 local timestamp with microseconds.
const timestampLayout = "2006-01-02T15:04:05.000000"

type rootResponse struct {
	Message     string `json:"message"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// EndpointInfo describes one route in the /info listing.
type EndpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type infoResponse struct {
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	GoVersion string         `json:"go_version"`
	Framework string         `json:"framework"`
	Endpoints []EndpointInfo `json:"endpoints"`
}

type testData struct {
	Numbers []int  `json:"numbers"`
	Text    string `json:"text"`
	Boolean bool   `json:"boolean"`
}

type testResponse struct {
	Message   string   `json:"message"`
	Data      testData `json:"data"`
	Timestamp string   `json:"timestamp"`
}

// Endpoints lists the routes the backend answers, in /info order.
var Endpoints = []EndpointInfo{
	{Path: "/", Method: http.MethodGet, Description: "Root endpoint"},
	{Path: "/health", Method: http.MethodGet, Description: "Health check"},
	{Path: "/info", Method: http.MethodGet, Description: "Service information"},
	{Path: "/test", Method: http.MethodGet, Description: "Test endpoint"},
}

// Server answers the backend routes.
type Server struct {
	environment string
	logger      logger.Logger
	now         func() time.Time
}

// NewServer creates a backend server.
func NewServer(opts ...Option) *Server {
	s := &Server{
		environment: "development",
		logger:      logger.Discard(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns a chi router with permissive CORS, the backend routes and
// the API docs.
func (s *Server) Handler(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(*http.Request, string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", s.counted("root", s.handleRoot))
	r.Get("/health", s.counted("health", s.handleHealth))
	r.Get("/info", s.counted("info", s.handleInfo))
	r.Get("/test", s.counted("test", s.handleTest))

	swagger.Register(ctx, r)
	return r
}

func (s *Server) counted(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.RecordBackendRequest(route)
		s.logger.Debug(r.Context(), "backend request",
			logger.String("route", route),
			logger.String("requestID", middleware.GetReqID(r.Context())))
		next(w, r)
	}
}

func (s *Server) timestamp() string {
	return s.now().Format(timestampLayout)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, rootResponse{
		Message:     "Hello from Simple Backend!",
		Status:      "running",
		Timestamp:   s.timestamp(),
		Environment: s.environment,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, healthResponse{
		Status:    "healthy",
		Timestamp: s.timestamp(),
		Service:   "backend-api",
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, infoResponse{
		Service:   ServiceName,
		Version:   Version,
		GoVersion: runtime.Version(),
		Framework: Framework,
		Endpoints: Endpoints,
	})
}

func (s *Server) handleTest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, testResponse{
		Message: "Test endpoint working!",
		Data: testData{
			Numbers: []int{1, 2, 3, 4, 5},
			Text:    "This is a test response",
			Boolean: true,
		},
		Timestamp: s.timestamp(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
