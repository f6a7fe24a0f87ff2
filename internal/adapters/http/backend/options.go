package backend

import (
	"time"

	"github.com/okian/statusboard/pkg/logger"
)

// Option configures a Server.
type Option func(*Server)

// WithEnvironment sets the environment reported by the root route.
func WithEnvironment(env string) Option {
	return func(s *Server) {
		if env != "" {
			s.environment = env
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}
