// Package session keeps the dashboards of live browser mounts.
package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/okian/statusboard/internal/domain/dashboard"
	"github.com/okian/statusboard/pkg/logger"
	"github.com/okian/statusboard/pkg/metrics"
)

// DefaultTTL is how long an untouched mount survives.
const DefaultTTL = 30 * time.Minute

// Registry maps mount ids to dashboards. Entries expire after the idle TTL;
// every Get renews it. An entry leaving the registry for any reason is
// unmounted.
type Registry struct {
	data   *gocache.Cache
	ttl    time.Duration
	logger logger.Logger
}

// New creates a registry with the given idle TTL. The cleanup interval
// defaults to twice the TTL.
func New(ttl time.Duration, opts ...Option) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r := &Registry{
		ttl:    ttl,
		logger: logger.Discard(),
	}
	cfg := options{cleanupInterval: ttl * 2}
	for _, opt := range opts {
		opt(r, &cfg)
	}

	r.data = gocache.New(ttl, cfg.cleanupInterval)
	r.data.OnEvicted(r.evicted)
	return r
}

// Put stores d under id with a fresh TTL.
func (r *Registry) Put(id string, d *dashboard.Dashboard) {
	r.data.SetDefault(id, d)
}

// Get returns the dashboard for id and renews its TTL.
func (r *Registry) Get(id string) (*dashboard.Dashboard, bool) {
	v, ok := r.data.Get(id)
	if !ok {
		return nil, false
	}
	d, ok := v.(*dashboard.Dashboard)
	if !ok {
		return nil, false
	}
	// Replace fails if id was deleted or expired since the lookup.
	if err := r.data.Replace(id, d, gocache.DefaultExpiration); err != nil {
		return nil, false
	}
	return d, true
}

// Delete removes id and unmounts its dashboard. It reports whether id was
// present.
func (r *Registry) Delete(id string) bool {
	if _, ok := r.data.Get(id); !ok {
		return false
	}
	r.data.Delete(id)
	return true
}

// Len returns the number of unexpired mounts.
func (r *Registry) Len() int {
	return len(r.data.Items())
}

// All returns the live dashboards.
func (r *Registry) All() []*dashboard.Dashboard {
	items := r.data.Items()
	out := make([]*dashboard.Dashboard, 0, len(items))
	for _, item := range items {
		if d, ok := item.Object.(*dashboard.Dashboard); ok {
			out = append(out, d)
		}
	}
	return out
}

// Sweep removes expired mounts now instead of waiting for the janitor.
func (r *Registry) Sweep() {
	r.data.DeleteExpired()
}

// Close unmounts and removes every stored dashboard.
func (r *Registry) Close() {
	for id := range r.data.Items() {
		r.data.Delete(id)
	}
	// Items skips expired entries.
	r.data.DeleteExpired()
}

func (r *Registry) evicted(id string, v any) {
	d, ok := v.(*dashboard.Dashboard)
	if !ok {
		return
	}
	d.Unmount()
	metrics.RecordUnmount()
	r.logger.Debug(context.Background(), "mount removed", logger.String("id", id))
}
