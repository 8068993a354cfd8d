// Package output formats request descriptions and response envelopes as
// human-readable transcripts, with optional color for terminals.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wesleyorama2/courier/http"
)

// Formatter renders requests and response envelopes in text form.
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
}

// NewFormatter creates a formatter. With noColor set, all output is plain
// text.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, scheme: scheme}
}

// FormatRequest renders a request description headed for target.
func (f *Formatter) FormatRequest(desc http.Requestable, target string) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(http.RawMethod(desc)),
		f.scheme.URL.Sprint(target))

	headers := desc.Headers()
	if headers.Len() > 0 {
		buf.WriteString("  Headers:\n")
		for _, h := range headers.Slice() {
			fmt.Fprintf(&buf, "    %s: %s\n",
				f.scheme.HeaderKey.Sprint(h.Key),
				f.scheme.HeaderValue.Sprint(h.Value))
		}
	}

	if params := desc.Parameters(); len(params) > 0 {
		encoded, err := json.Marshal(params)
		if err == nil {
			fmt.Fprintf(&buf, "  Body: %s\n", string(encoded))
		}
	}

	return buf.String()
}

// FormatResponse renders a response envelope, including its timing metrics.
func (f *Formatter) FormatResponse(resp *http.Response) string {
	var buf strings.Builder

	status := f.scheme.StatusOK
	switch {
	case resp.IsRedirect():
		status = f.scheme.StatusWarn
	case resp.IsClientError(), resp.IsServerError():
		status = f.scheme.StatusError
	}

	fmt.Fprintf(&buf, "◀ RESPONSE: %s (%s)\n",
		status.Sprint(resp.Result.Status),
		f.scheme.Timing.Sprint(resp.Metrics.Duration.String()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for key, values := range resp.Result.Header {
			for _, value := range values {
				fmt.Fprintf(&buf, "    %s: %s\n",
					f.scheme.HeaderKey.Sprint(key),
					f.scheme.HeaderValue.Sprint(value))
			}
		}
	}

	if len(resp.Body()) > 0 {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(resp.BodyString()))
		buf.WriteString("\n")
	}

	return buf.String()
}

// formatJSONString pretty-prints s when it is valid JSON, and returns it
// unchanged otherwise.
func formatJSONString(s string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(s), "  ", "  "); err != nil {
		return s
	}
	return pretty.String()
}
