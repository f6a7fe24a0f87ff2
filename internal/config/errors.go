package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidConfig reports a loaded value that fails validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig reports a file, env or decode failure.
	ErrLoadConfig = errors.New("load config failed")
)
