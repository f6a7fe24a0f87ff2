package probe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Render writes the report as plain text, one block per settled fetch.
func Render(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Backend URL: %s\n", r.BaseURL)
	fmt.Fprintf(&b, "Environment: %s\n\n", r.Environment)

	writeResult(&b, r.Mount)
	for _, res := range r.Results {
		writeResult(&b, res)
	}

	fmt.Fprintf(&b, "%d fetches, %d disconnected, %s\n",
		len(r.Results)+1, r.Disconnected(), r.Duration.Round(time.Millisecond))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeResult(b *strings.Builder, res Result) {
	fmt.Fprintf(b, "== %s (%s) ==\n", res.Endpoint.Name, res.Endpoint.Path)
	fmt.Fprintf(b, "Backend Status: %s\n", res.View.Status)
	if msg := res.View.Err(); msg != "" {
		fmt.Fprintf(b, "Error: %s\n", msg)
	}
	if res.View.HasData() {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, res.View.Data(), "", "  "); err != nil {
			pretty.Reset()
			pretty.Write(res.View.Data())
		}
		b.WriteString(pretty.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
