package probe

import "errors"

// ErrDisconnected is returned by Run when at least one fetch failed.
var ErrDisconnected = errors.New("backend disconnected")
