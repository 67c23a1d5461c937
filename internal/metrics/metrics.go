package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	throttled       int
	lastThrottle    time.Duration
	lastCallLatency time.Duration
}

type pageStats struct {
	builds      int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and
// page builds, optionally mirrored to OpenTelemetry instruments.
type Recorder struct {
	mu        sync.Mutex
	endpoints map[string]*endpointStats
	pages     map[string]*pageStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		endpoints: make(map[string]*endpointStats),
		pages:     make(map[string]*pageStats),
		otel:      otel,
	}
}

// RecordFetch counts one upstream request for an endpoint kind and stores its latency.
func (r *Recorder) RecordFetch(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.endpointLocked(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(endpoint, duration, err)
	}
}

// RecordThrottle tracks time a request spent waiting on the client-side limiter.
func (r *Recorder) RecordThrottle(endpoint string, wait time.Duration) {
	if r == nil || wait <= 0 {
		return
	}

	r.mu.Lock()
	stats := r.endpointLocked(endpoint)
	stats.throttled++
	stats.lastThrottle = wait
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordThrottle(endpoint, wait)
	}
}

// RecordPage tracks one page assembly (home, team, schedule, ...).
func (r *Recorder) RecordPage(page string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.pages[page]
	if !ok {
		stats = &pageStats{}
		r.pages[page] = stats
	}
	stats.builds++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPage(page, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FetchCalls returns the total requests recorded for an endpoint kind.
func (r *Recorder) FetchCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// FetchErrors returns the failed requests recorded for an endpoint kind.
func (r *Recorder) FetchErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// LastCallLatency returns the last recorded latency for an endpoint kind.
func (r *Recorder) LastCallLatency(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastCallLatency
}

// Snapshot is a copy of the current stats for an endpoint kind.
type Snapshot struct {
	Calls           int
	Errors          int
	Throttled       int
	LastThrottle    time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.endpoints[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Throttled:       stats.throttled,
		LastThrottle:    stats.lastThrottle,
		LastCallLatency: stats.lastCallLatency,
	}
}

// PageSnapshot is a copy of the current stats for a page.
type PageSnapshot struct {
	Builds      int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) PageSnapshot(page string) PageSnapshot {
	if r == nil {
		return PageSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.pages[page]
	if !ok || stats == nil {
		return PageSnapshot{}
	}
	return PageSnapshot{
		Builds:      stats.builds,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) endpointLocked(endpoint string) *endpointStats {
	stats, ok := r.endpoints[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.endpoints[endpoint] = stats
	}
	return stats
}
