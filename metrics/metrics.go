package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pix_relay",
			Name:      "payment_requests_total",
			Help:      "Total de requisições de pagamento por resultado",
		},
		[]string{"status"},
	)

	PaymentRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pix_relay",
			Name:      "payment_request_duration_seconds",
			Help:      "Duração do ciclo relay -> gateway -> resposta",
			Buckets: []float64{
				0.05, 0.1, 0.2, 0.3, 0.5, 0.8, 1.2, 2, 3, 5, 8, 15,
			},
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(PaymentRequestsTotal, PaymentRequestDuration)
}

func IncRequest(status string) {
	PaymentRequestsTotal.WithLabelValues(status).Inc()
}

func ObserveDuration(status string, seconds float64) {
	PaymentRequestDuration.WithLabelValues(status).Observe(seconds)
}
