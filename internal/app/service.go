// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/statusboard/internal/adapters/http/client"
	"github.com/okian/statusboard/internal/adapters/session"
	"github.com/okian/statusboard/internal/domain/dashboard"
	"github.com/okian/statusboard/internal/domain/model"
	"github.com/okian/statusboard/pkg/logger"
	"github.com/okian/statusboard/pkg/metrics"
)

// Service owns the mounted dashboards and the backend client they share.
type Service struct {
	mu sync.RWMutex

	// Core components
	fetcher  dashboard.Fetcher
	registry *session.Registry

	// Configuration
	baseURL        string
	environment    string
	endpoints      []model.Endpoint
	requestTimeout time.Duration
	mountTTL       time.Duration

	// State
	started     bool
	startedAt   time.Time
	ctx         context.Context
	cancel      context.CancelFunc
	totalMounts atomic.Int64

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		baseURL:     dashboard.DefaultBaseURL,
		environment: dashboard.DefaultEnvironment,
		endpoints:   model.DefaultEndpoints(),
		mountTTL:    session.DefaultTTL,
		logger:      nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the backend client and the mount registry. Dashboards mounted
// afterwards live until Stop, Unmount, or idle expiry.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.fetcher == nil {
		s.fetcher = client.New(client.WithTimeout(s.requestTimeout))
	}
	s.registry = session.New(s.mountTTL, session.WithLogger(s.logger.Named("session")))
	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.startedAt = time.Now()
	s.started = true

	s.logger.Info(ctx, "dashboard service started",
		logger.String("baseURL", s.baseURL),
		logger.String("environment", s.environment),
		logger.Duration("requestTimeout", s.requestTimeout),
		logger.Duration("mountTTL", s.mountTTL),
	)
	return nil
}

// Stop unmounts every dashboard and waits for their fetches to settle.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}

	s.logger.Info(context.Background(), "stopping dashboard service...")

	live := s.registry.All()
	s.registry.Close()
	s.cancel()
	s.started = false
	s.mu.Unlock()

	for _, d := range live {
		d.Wait()
	}

	s.logger.Info(context.Background(), "dashboard service stopped", logger.Int("unmounted", len(live)))
}

// Mount creates a dashboard, issues its automatic health fetch, and returns
// its id.
func (s *Service) Mount(ctx context.Context) (string, *dashboard.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return "", nil, ErrNotStarted
	}

	id := uuid.NewString()
	d := dashboard.New(s.fetcher,
		dashboard.WithBaseURL(s.baseURL),
		dashboard.WithEnvironment(s.environment),
		dashboard.WithEndpoints(s.endpoints),
		dashboard.WithLogger(s.logger.With(logger.String("mount", id))),
	)
	if err := d.Mount(s.ctx); err != nil {
		return "", nil, err
	}
	s.registry.Put(id, d)
	s.totalMounts.Add(1)
	metrics.RecordMount()

	s.logger.Debug(ctx, "dashboard mounted", logger.String("mount", id))
	return id, d, nil
}

// Dashboard returns the live dashboard for id.
func (s *Service) Dashboard(_ context.Context, id string) (*dashboard.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	d, ok := s.registry.Get(id)
	if !ok {
		return nil, ErrMountNotFound
	}
	return d, nil
}

// Unmount removes the dashboard for id and cancels its fetches.
func (s *Service) Unmount(ctx context.Context, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return ErrNotStarted
	}
	if !s.registry.Delete(id) {
		return ErrMountNotFound
	}
	s.logger.Debug(ctx, "dashboard unmounted", logger.String("mount", id))
	return nil
}

// Endpoints returns the endpoint list every dashboard is built with.
func (s *Service) Endpoints() []model.Endpoint {
	return append([]model.Endpoint(nil), s.endpoints...)
}

// MountCount returns the number of live mounts.
func (s *Service) MountCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return 0
	}
	return s.registry.Len()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"baseURL":        s.baseURL,
		"environment":    s.environment,
		"requestTimeout": s.requestTimeout.String(),
		"mountTTL":       s.mountTTL.String(),
		"totalMounts":    s.totalMounts.Load(),
	}

	if s.started {
		stats["mounts"] = s.registry.Len()
		stats["uptime"] = time.Since(s.startedAt).Round(time.Second).String()
	}

	return stats
}
