package dashboard

import (
	"github.com/okian/statusboard/internal/domain/model"
	"github.com/okian/statusboard/pkg/logger"
)

// Option applies a configuration option to a Dashboard.
type Option func(*Dashboard)

// WithBaseURL sets the origin every endpoint path is appended to. The value is
// used verbatim.
func WithBaseURL(baseURL string) Option {
	return func(d *Dashboard) {
		if baseURL != "" {
			d.baseURL = baseURL
		}
	}
}

// WithEndpoints replaces the default endpoint list.
func WithEndpoints(endpoints []model.Endpoint) Option {
	return func(d *Dashboard) {
		if len(endpoints) > 0 {
			d.endpoints = append([]model.Endpoint(nil), endpoints...)
		}
	}
}

// WithEnvironment sets the build-environment label shown in the info panel.
func WithEnvironment(env string) Option {
	return func(d *Dashboard) {
		if env != "" {
			d.environment = env
		}
	}
}

// WithLogger sets the logger used for fetch lifecycle records.
func WithLogger(l logger.Logger) Option {
	return func(d *Dashboard) {
		if l != nil {
			d.logger = l
		}
	}
}
