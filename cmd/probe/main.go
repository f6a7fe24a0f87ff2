package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/okian/statusboard/internal/config"
	"github.com/okian/statusboard/internal/probe"
	"github.com/okian/statusboard/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout      = 10 * time.Second
	defaultProbeTimeout = 2 * time.Minute
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}

	// Environment supplies the defaults; flags override them.
	cfg, err := config.Load(context.Background())
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	var (
		baseURL = flag.String("url", cfg.APIURL, "Base URL of the backend")
		timeout = flag.Duration("timeout", defaultTimeout, "Per-request timeout, 0 for none")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp(os.Stdout)
		return 0
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	_, err = probe.Run(ctx, &probe.Config{
		BaseURL:     *baseURL,
		Timeout:     *timeout,
		Environment: cfg.Environment,
		Verbose:     *verbose,
	}, os.Stdout)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, probe.ErrDisconnected):
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		return 1
	default:
		os.Stderr.WriteString("Probe error: " + err.Error() + "\n")
		return 1
	}
}
