package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	lookups          *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	journalWrites    *prometheus.CounterVec
}

// New creates a recorder registered with the default Prometheus registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a recorder registered with reg. Tests pass a fresh registry.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhub_lookups_total",
				Help: "Stock lookups by outcome",
			},
			[]string{"outcome"},
		),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhub_upstream_requests_total",
				Help: "Upstream API calls by api and result",
			},
			[]string{"api", "result"},
		),
		upstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webhub_upstream_duration_seconds",
				Help:    "Upstream API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),
		journalWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhub_journal_writes_total",
				Help: "Lookup journal writes by backend and result",
			},
			[]string{"backend", "result"},
		),
	}
	reg.MustRegister(r.lookups, r.upstreamRequests, r.upstreamLatency, r.journalWrites)
	return r
}

// RecordLookup counts a finished stock lookup.
func (r *Recorder) RecordLookup(outcome string) {
	r.lookups.WithLabelValues(outcome).Inc()
}

// RecordUpstream records one upstream call.
func (r *Recorder) RecordUpstream(api string, seconds float64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.upstreamRequests.WithLabelValues(api, result).Inc()
	r.upstreamLatency.WithLabelValues(api).Observe(seconds)
}

// RecordJournalWrite counts a journal write attempt.
func (r *Recorder) RecordJournalWrite(backend string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.journalWrites.WithLabelValues(backend, result).Inc()
}

// UpstreamRequests exposes the upstream counter for assertions.
func (r *Recorder) UpstreamRequests() *prometheus.CounterVec { return r.upstreamRequests }
