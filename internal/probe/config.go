package probe

import (
	"time"

	"github.com/okian/statusboard/internal/domain/model"
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL     string           // Base URL of the backend
	Endpoints   []model.Endpoint // Endpoints to fetch, in order
	Timeout     time.Duration    // Per-request timeout, zero for none
	Environment string           // Environment label for the report header
	Verbose     bool             // Log every fetch
}

// Result is one settled fetch.
type Result struct {
	Endpoint model.Endpoint
	View     model.View
	Elapsed  time.Duration
}

// Report collects every settled fetch of a run, starting with the automatic
// health fetch.
type Report struct {
	BaseURL     string
	Environment string
	Mount       Result
	Results     []Result
	StartTime   time.Time
	Duration    time.Duration
}

// Disconnected counts results that ended Disconnected, the mount fetch
// included.
func (r *Report) Disconnected() int {
	n := 0
	if r.Mount.View.Status == model.StatusDisconnected {
		n++
	}
	for _, res := range r.Results {
		if res.View.Status == model.StatusDisconnected {
			n++
		}
	}
	return n
}
