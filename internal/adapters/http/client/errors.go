package client

import "errors"

// Sentinel kinds for backend request failures. The dashboard collapses all of
// them into one failure path; they exist for logs and tests.
var (
	ErrRequest     = errors.New("request failed")
	ErrStatus      = errors.New("request failed with status code")
	ErrEmptyBody   = errors.New("empty response body")
	ErrInvalidJSON = errors.New("invalid JSON response body")
)
