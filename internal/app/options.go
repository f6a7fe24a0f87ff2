package service

import (
	"time"

	"github.com/okian/statusboard/internal/domain/dashboard"
	"github.com/okian/statusboard/internal/domain/model"
	"github.com/okian/statusboard/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBaseURL sets the backend origin every dashboard fetches from.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// WithEnvironment sets the environment label shown by every dashboard.
func WithEnvironment(env string) Option {
	return func(s *Service) {
		if env != "" {
			s.environment = env
		}
	}
}

// WithEndpoints replaces the default endpoint list.
func WithEndpoints(endpoints []model.Endpoint) Option {
	return func(s *Service) {
		if len(endpoints) > 0 {
			s.endpoints = append([]model.Endpoint(nil), endpoints...)
		}
	}
}

// WithRequestTimeout bounds each backend request. Zero means no bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.requestTimeout = d
		}
	}
}

// WithMountTTL sets how long an untouched mount survives.
func WithMountTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.mountTTL = d
		}
	}
}

// WithFetcher replaces the HTTP client used for backend requests.
func WithFetcher(f dashboard.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}
