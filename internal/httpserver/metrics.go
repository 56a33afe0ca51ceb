package httpserver

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "oaspostman"

// Conversion outcomes used as the "outcome" label.
const (
	outcomeOK          = "ok"
	outcomeBadRequest  = "bad_request"
	outcomeTooLarge    = "too_large"
	outcomeServerError = "error"
)

type metrics struct {
	conversions *prometheus.CounterVec
	duration    prometheus.Histogram
	requests    prometheus.Counter
	issues      *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "conversions_total",
			Help:      "Conversion requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent parsing and converting a document.",
			Buckets:   prometheus.DefBuckets,
		}),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "collection_requests_total",
			Help:      "Postman requests generated across all conversions.",
		}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "conversion_issues_total",
			Help:      "Conversion issues by severity.",
		}, []string{"severity"}),
	}
	for _, c := range []prometheus.Collector{m.conversions, m.duration, m.requests, m.issues} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
