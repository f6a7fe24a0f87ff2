package session

import (
	"time"

	"github.com/okian/statusboard/pkg/logger"
)

type options struct {
	cleanupInterval time.Duration
}

// Option configures a Registry.
type Option func(*Registry, *options)

// WithLogger sets the logger used for eviction records.
func WithLogger(l logger.Logger) Option {
	return func(r *Registry, _ *options) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCleanupInterval sets how often expired mounts are swept. Zero or
// negative disables the janitor.
func WithCleanupInterval(d time.Duration) Option {
	return func(_ *Registry, o *options) {
		o.cleanupInterval = d
	}
}
