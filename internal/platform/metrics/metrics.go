// Package metrics registers the gateway's Prometheus instruments.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	CasesSubmitted  prometheus.Counter
	CasesEdited     prometheus.Counter
	EditConflicts   prometheus.Counter
	EditsRefused    prometheus.Counter
	Logins          prometheus.Counter
	RequestLatency  *prometheus.HistogramVec
	UpstreamLatency *prometheus.HistogramVec
}

// New creates and registers all metrics on reg. Pass prometheus.DefaultRegisterer
// in main; tests use a fresh registry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CasesSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "givegate_cases_submitted_total",
			Help: "Total number of aid cases submitted through the gateway",
		}),
		CasesEdited: factory.NewCounter(prometheus.CounterOpts{
			Name: "givegate_cases_edited_total",
			Help: "Total number of accepted case edits",
		}),
		EditConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "givegate_edit_conflicts_total",
			Help: "Edits rejected upstream for staleness or lost eligibility",
		}),
		EditsRefused: factory.NewCounter(prometheus.CounterOpts{
			Name: "givegate_edits_refused_total",
			Help: "Edits refused locally by the eligibility check",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "givegate_logins_total",
			Help: "Successful dashboard logins",
		}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "givegate_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "givegate_upstream_duration_seconds",
			Help:    "Upstream case-service call latency by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(route, method string, d time.Duration) {
	m.RequestLatency.WithLabelValues(route, method).Observe(d.Seconds())
}

// ObserveUpstream records one upstream round trip.
func (m *Metrics) ObserveUpstream(operation string, d time.Duration) {
	m.UpstreamLatency.WithLabelValues(operation).Observe(d.Seconds())
}
