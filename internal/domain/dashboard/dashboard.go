// Package dashboard implements the status dashboard: one view-state record,
// the fetch operation that drives it, and its mount lifecycle.
//
// Overlapping fetches are not sequenced. Each settles into the same record
// and the one that settles last wins, regardless of start order.
package dashboard

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/okian/statusboard/internal/domain/model"
	"github.com/okian/statusboard/pkg/logger"
	"github.com/okian/statusboard/pkg/metrics"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultEnvironment is the environment label used when none is configured.
const DefaultEnvironment = "development"

const failurePrefix = "Failed to fetch data: "

// Fetcher performs one GET and returns the JSON body.
type Fetcher interface {
	Get(ctx context.Context, url string) (json.RawMessage, error)
}

// Snapshot is a point-in-time copy of a dashboard's view state together with
// its static configuration.
type Snapshot struct {
	model.View
	BaseURL     string
	Environment string
	Endpoints   []model.Endpoint
}

// Dashboard owns the view state of one mount.
type Dashboard struct {
	fetcher     Fetcher
	baseURL     string
	environment string
	endpoints   []model.Endpoint
	logger      logger.Logger

	mu        sync.Mutex
	view      model.View
	mounted   bool
	unmounted bool
	ctx       context.Context
	cancel    context.CancelFunc
	inflight  sync.WaitGroup
}

// New creates an unmounted dashboard in the initial view state.
func New(fetcher Fetcher, opts ...Option) *Dashboard {
	d := &Dashboard{
		fetcher:     fetcher,
		baseURL:     DefaultBaseURL,
		environment: DefaultEnvironment,
		endpoints:   model.DefaultEndpoints(),
		logger:      logger.Discard(),
		view:        model.InitialView(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Mount binds the dashboard to ctx and issues the automatic health fetch.
// Triggered fetches live until ctx is done or Unmount is called.
func (d *Dashboard) Mount(ctx context.Context) error {
	d.mu.Lock()
	switch {
	case d.unmounted:
		d.mu.Unlock()
		return ErrUnmounted
	case d.mounted:
		d.mu.Unlock()
		return ErrAlreadyMounted
	}
	d.ctx, d.cancel = context.WithCancel(ctx)
	d.mounted = true
	d.mu.Unlock()

	d.logger.Debug(ctx, "dashboard mounted", logger.String("baseURL", d.baseURL))
	return d.Trigger(model.HealthPath)
}

// Unmount cancels in-flight fetches and freezes the view state. Results that
// settle afterwards are dropped. Calling it more than once is a no-op.
func (d *Dashboard) Unmount() {
	d.mu.Lock()
	if d.unmounted {
		d.mu.Unlock()
		return
	}
	d.unmounted = true
	cancel := d.cancel
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.logger.Debug(context.Background(), "dashboard unmounted")
}

// Trigger starts a fetch of path without waiting for it to settle. The view
// enters Loading before Trigger returns.
func (d *Dashboard) Trigger(path string) error {
	d.mu.Lock()
	switch {
	case d.unmounted:
		d.mu.Unlock()
		return ErrUnmounted
	case !d.mounted:
		d.mu.Unlock()
		return ErrNotMounted
	}
	d.view = model.View{Phase: model.Loading{}, Status: d.view.Status}
	d.inflight.Add(1)
	ctx := d.ctx
	d.mu.Unlock()

	go func() {
		defer d.inflight.Done()
		d.run(ctx, path)
	}()
	return nil
}

// Fetch requests path and blocks until the request settles. It returns the
// view as of that settlement. On an unmounted dashboard it returns the frozen
// view without issuing a request.
func (d *Dashboard) Fetch(ctx context.Context, path string) model.View {
	d.mu.Lock()
	if d.unmounted {
		v := d.view
		d.mu.Unlock()
		return v
	}
	d.view = model.View{Phase: model.Loading{}, Status: d.view.Status}
	d.mu.Unlock()

	return d.run(ctx, path)
}

// Wait blocks until every triggered fetch has settled.
func (d *Dashboard) Wait() {
	d.inflight.Wait()
}

// View returns the current view state.
func (d *Dashboard) View() model.View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}

// Snapshot returns the current view state with the static configuration.
func (d *Dashboard) Snapshot() Snapshot {
	return Snapshot{
		View:        d.View(),
		BaseURL:     d.baseURL,
		Environment: d.environment,
		Endpoints:   d.Endpoints(),
	}
}

// Endpoints returns a copy of the configured endpoint list.
func (d *Dashboard) Endpoints() []model.Endpoint {
	return append([]model.Endpoint(nil), d.endpoints...)
}

// BaseURL returns the configured base URL.
func (d *Dashboard) BaseURL() string {
	return d.baseURL
}

// run issues the request and settles its result into the view. The view must
// already be Loading.
func (d *Dashboard) run(ctx context.Context, path string) model.View {
	url := d.baseURL + path
	d.logger.Debug(ctx, "fetch started", logger.String("url", url))
	metrics.RecordFetchStarted()
	start := time.Now()

	data, err := d.fetcher.Get(ctx, url)
	elapsed := time.Since(start)
	latencyMs := float64(elapsed.Microseconds()) / 1000

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.unmounted {
		metrics.RecordFetchSettled(path, metrics.OutcomeDropped, latencyMs)
		return d.view
	}

	if err != nil {
		d.view = model.View{
			Phase:  model.Failed{Message: failurePrefix + err.Error()},
			Status: model.StatusDisconnected,
		}
		metrics.RecordFetchSettled(path, metrics.OutcomeFailure, latencyMs)
		d.logger.Warn(ctx, "fetch failed",
			logger.String("url", url),
			logger.Duration("elapsed", elapsed),
			logger.Error(err))
		return d.view
	}

	d.view = model.View{
		Phase:  model.Succeeded{Data: data},
		Status: model.StatusConnected,
	}
	metrics.RecordFetchSettled(path, metrics.OutcomeSuccess, latencyMs)
	d.logger.Info(ctx, "fetch succeeded",
		logger.String("url", url),
		logger.Duration("elapsed", elapsed),
		logger.Int("bytes", len(data)))
	return d.view
}
