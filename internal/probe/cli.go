package probe

import "io"

// ShowHelp prints usage information for the probe tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Statusboard Probe
=================

Fetches every dashboard endpoint from a backend once and prints the
connection status and response of each. Exits non-zero if any fetch fails.

Usage:
  probe [options]

Options:
  -url string
        Base URL of the backend (default from STATUSBOARD_API_URL, else "http://localhost:8000")
  -timeout duration
        Per-request timeout, 0 for none (default 10s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe a local backend
  probe

  # Probe a backend container with a short timeout
  probe -url http://backend:8000 -timeout 2s
`)
}
