// Package probe drives one dashboard headlessly against a backend and
// reports each settled state as text.
package probe

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/okian/statusboard/internal/adapters/http/client"
	"github.com/okian/statusboard/internal/domain/dashboard"
	"github.com/okian/statusboard/internal/domain/model"
	"github.com/okian/statusboard/pkg/logger"
)

// Run mounts a dashboard, waits for its health fetch, then fetches every
// configured endpoint in order. The report is written to out. It returns
// ErrDisconnected when any fetch failed.
func Run(ctx context.Context, config *Config, out io.Writer) (*Report, error) {
	return RunWith(ctx, config, client.New(client.WithTimeout(config.Timeout)), out)
}

// RunWith is Run with a caller-supplied fetcher.
func RunWith(ctx context.Context, config *Config, fetcher dashboard.Fetcher, out io.Writer) (*Report, error) {
	log := logger.Get().Named("probe")
	if !config.Verbose {
		log = logger.Discard()
	}

	endpoints := config.Endpoints
	if len(endpoints) == 0 {
		endpoints = model.DefaultEndpoints()
	}

	d := dashboard.New(fetcher,
		dashboard.WithBaseURL(config.BaseURL),
		dashboard.WithEnvironment(config.Environment),
		dashboard.WithEndpoints(endpoints),
		dashboard.WithLogger(log),
	)

	report := &Report{
		BaseURL:     d.BaseURL(),
		Environment: d.Snapshot().Environment,
		StartTime:   time.Now(),
	}

	logger.Get().Info(ctx, "starting probe",
		logger.String("baseURL", report.BaseURL),
		logger.Int("endpoints", len(endpoints)),
		logger.Duration("timeout", config.Timeout))

	start := time.Now()
	if err := d.Mount(ctx); err != nil {
		return nil, fmt.Errorf("mount failed: %w", err)
	}
	defer d.Unmount()
	d.Wait()
	report.Mount = Result{
		Endpoint: model.Endpoint{Name: "Auto Health Check", Path: model.HealthPath},
		View:     d.View(),
		Elapsed:  time.Since(start),
	}

	for _, e := range endpoints {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("probe interrupted: %w", err)
		}
		start := time.Now()
		v := d.Fetch(ctx, e.Path)
		report.Results = append(report.Results, Result{Endpoint: e, View: v, Elapsed: time.Since(start)})
	}

	report.Duration = time.Since(report.StartTime)
	if err := Render(out, report); err != nil {
		return report, fmt.Errorf("render failed: %w", err)
	}

	logger.Get().Info(ctx, "probe finished",
		logger.Int("fetches", len(report.Results)+1),
		logger.Int("disconnected", report.Disconnected()),
		logger.Duration("duration", report.Duration))

	if n := report.Disconnected(); n > 0 {
		return report, fmt.Errorf("%w: %d of %d fetches failed", ErrDisconnected, n, len(report.Results)+1)
	}
	return report, nil
}
