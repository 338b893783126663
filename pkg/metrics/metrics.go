package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the relay's Prometheus instruments. Registered once at
// startup and injected into the HTTP layer.
type Metrics struct {
	PaymentsCreated   *prometheus.CounterVec
	WebhooksProcessed *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PaymentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_payments_created_total",
				Help: "Payment preference creation attempts by outcome.",
			},
			[]string{"outcome"},
		),
		WebhooksProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_webhooks_processed_total",
				Help: "Webhook notifications by outcome.",
			},
			[]string{"outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relay_http_request_duration_seconds",
				Help:    "Duration of HTTP request handling in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
	reg.MustRegister(m.PaymentsCreated, m.WebhooksProcessed, m.RequestDuration)
	return m
}
