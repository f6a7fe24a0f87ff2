// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - Defaults live in New; Load layers an optional YAML file and env vars on top.
//   - Errors returned from Load wrap this package's sentinels.
package config

import (
	"time"
)

// Config contains process configuration shared by the dashboard server,
// the backend stub and the probe CLI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr is the dashboard listen address.
	Addr string `koanf:"addr"`

	// BackendAddr is the listen address of the backend stub.
	BackendAddr string `koanf:"backend_addr"`

	// APIURL is the base URL every probed endpoint path is appended to.
	APIURL string `koanf:"api_url"`

	// Environment is the build-environment label shown on the dashboard and
	// reported by the backend stub.
	Environment string `koanf:"environment"`

	// RequestTimeout bounds each backend fetch. Zero means no timeout.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// MountTTL is how long an untouched dashboard mount survives.
	MountTTL time.Duration `koanf:"mount_ttl"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":3000",
		BackendAddr:    ":8000",
		APIURL:         "http://localhost:8000",
		Environment:    "development",
		RequestTimeout: 0,
		MountTTL:       30 * time.Minute,
	}
}
