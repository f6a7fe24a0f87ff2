package model

// Endpoint is a fixed backend path the dashboard can query.
type Endpoint struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// DefaultEndpoints returns the four probed endpoints in display order.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{Name: "Root", Path: "/"},
		{Name: "Health Check", Path: "/health"},
		{Name: "Service Info", Path: "/info"},
		{Name: "Test Data", Path: "/test"},
	}
}

// HealthPath is fetched automatically when a dashboard mounts.
const HealthPath = "/health"

// FindEndpoint returns the endpoint with the given path.
func FindEndpoint(endpoints []Endpoint, path string) (Endpoint, bool) {
	for _, e := range endpoints {
		if e.Path == path {
			return e, true
		}
	}
	return Endpoint{}, false
}
