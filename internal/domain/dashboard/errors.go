package dashboard

import "errors"

// Sentinel kinds for dashboard lifecycle misuse.
var (
	ErrNotMounted     = errors.New("dashboard not mounted")
	ErrAlreadyMounted = errors.New("dashboard already mounted")
	ErrUnmounted      = errors.New("dashboard unmounted")
)
