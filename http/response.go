package http

import (
	"encoding/json"
	nethttp "net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Result is the raw outcome of one transport execution: the buffered payload
// plus transport-level response metadata.
type Result struct {
	StatusCode int
	Status     string
	Header     nethttp.Header
	Body       []byte
}

// Metrics records the timing of exactly one execution: when it started and
// how long it took. Duration is wall-clock elapsed time and is never
// negative.
type Metrics struct {
	Start    time.Time
	Duration time.Duration
}

// Seconds returns the elapsed time in seconds with sub-second precision.
func (m Metrics) Seconds() float64 {
	return m.Duration.Seconds()
}

// Response is the envelope produced by one execution: the original request
// description, the raw result, and the timing metrics. Envelopes are not
// mutated once created; modifiers derive new envelopes via WithResult and
// WithMetrics.
type Response struct {
	Request Requestable
	Result  *Result
	Metrics Metrics
}

// WithResult returns a copy of the envelope carrying a different result.
func (r *Response) WithResult(result *Result) *Response {
	c := *r
	c.Result = result
	return &c
}

// WithMetrics returns a copy of the envelope carrying different metrics.
func (r *Response) WithMetrics(m Metrics) *Response {
	c := *r
	c.Metrics = m
	return &c
}

// Body returns the buffered payload bytes.
func (r *Response) Body() []byte {
	return r.Result.Body
}

// BodyString returns the payload as a string.
func (r *Response) BodyString() string {
	return string(r.Result.Body)
}

// JSON unmarshals the payload into v.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Result.Body, v)
}

// Query extracts a value from a JSON payload using a gjson path expression,
// e.g. "users.0.name".
func (r *Response) Query(path string) gjson.Result {
	return gjson.GetBytes(r.Result.Body, path)
}

// GetHeader returns the value of the named response header.
func (r *Response) GetHeader(key string) string {
	return r.Result.Header.Get(key)
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.Result.StatusCode >= 200 && r.Result.StatusCode < 300
}

// IsRedirect reports whether the status code is in the 3xx range.
func (r *Response) IsRedirect() bool {
	return r.Result.StatusCode >= 300 && r.Result.StatusCode < 400
}

// IsClientError reports whether the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.Result.StatusCode >= 400 && r.Result.StatusCode < 500
}

// IsServerError reports whether the status code is in the 5xx range.
func (r *Response) IsServerError() bool {
	return r.Result.StatusCode >= 500 && r.Result.StatusCode < 600
}
