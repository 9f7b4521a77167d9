package metrics

import "github.com/prometheus/client_golang/prometheus"

// APIMetrics exposes counters/histograms for the public API.
type APIMetrics struct {
	catalogListTotal     *prometheus.CounterVec
	bookingsCreatedTotal *prometheus.CounterVec
	bookingLatency       prometheus.Histogram
}

func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	m := &APIMetrics{
		catalogListTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeserve",
			Subsystem: "catalog",
			Name:      "list_total",
			Help:      "Total catalog list requests served",
		}, []string{"status"}),
		bookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeserve",
			Subsystem: "bookings",
			Name:      "created_total",
			Help:      "Total booking intake requests",
		}, []string{"status"}),
		bookingLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "homeserve",
			Subsystem: "bookings",
			Name:      "intake_latency_seconds",
			Help:      "Latency of booking intake processing",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.catalogListTotal, m.bookingsCreatedTotal, m.bookingLatency)
	return m
}

func (m *APIMetrics) ObserveCatalogList(status string) {
	if m == nil {
		return
	}
	m.catalogListTotal.WithLabelValues(status).Inc()
}

func (m *APIMetrics) ObserveBookingCreated(status string) {
	if m == nil {
		return
	}
	m.bookingsCreatedTotal.WithLabelValues(status).Inc()
}

func (m *APIMetrics) ObserveBookingLatency(seconds float64) {
	if m == nil {
		return
	}
	m.bookingLatency.Observe(seconds)
}
