package api

import "github.com/okian/statusboard/pkg/logger"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVersion sets the version label shown in the info panel.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

// WithRefreshSeconds sets the reload delay of a page rendered while loading.
func WithRefreshSeconds(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.refresh = n
		}
	}
}
