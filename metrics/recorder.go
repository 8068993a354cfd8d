// Package metrics aggregates per-execution timing into HDR histograms for
// accurate latency percentiles across many executions.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/wesleyorama2/courier/http"
)

// Recorder collects envelope durations into an HDR histogram.
//
// Latencies are recorded in microseconds over a 1µs..1h range with 3
// significant figures, the same shape the histogram takes for load testing.
// Recorder is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	hist     *hdrhistogram.Histogram
	success  int64
	failures int64
}

// Snapshot is a point-in-time summary of the recorded latencies.
type Snapshot struct {
	Count    int64
	Success  int64
	Failures int64
	Min      time.Duration
	Max      time.Duration
	Mean     time.Duration
	P50      time.Duration
	P90      time.Duration
	P99      time.Duration
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(1, 3600000000, 3),
	}
}

// Observe records one envelope's duration, counting it as a success or
// failure based on the response status class.
func (r *Recorder) Observe(resp *http.Response) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_ = r.hist.RecordValue(resp.Metrics.Duration.Microseconds())
	if resp.IsSuccess() {
		r.success++
	} else {
		r.failures++
	}
}

// ObserveFailure counts an execution that produced no envelope at all, such
// as a transport error. Nothing is recorded into the histogram because no
// meaningful duration exists.
func (r *Recorder) ObserveFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

// Snapshot returns the current aggregate view.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		Count:    r.hist.TotalCount(),
		Success:  r.success,
		Failures: r.failures,
		Min:      time.Duration(r.hist.Min()) * time.Microsecond,
		Max:      time.Duration(r.hist.Max()) * time.Microsecond,
		Mean:     time.Duration(r.hist.Mean()) * time.Microsecond,
		P50:      time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:      time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:      time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond,
	}
}
