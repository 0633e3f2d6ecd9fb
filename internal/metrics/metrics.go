package metrics

import (
	"strconv"
	"time"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealer_notifier"

type Metrics struct {
	batches          *prometheus.CounterVec
	results          *prometheus.CounterVec
	providerRequests *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		batches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batches_total",
				Help:      "Total number of batches by campaign and outcome",
			},
			[]string{"campaign", "outcome"},
		),
		results: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_results_total",
				Help:      "Total number of dispatched items by campaign and status",
			},
			[]string{"campaign", "status"},
		),
		providerRequests: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Duration of WhatsApp API requests",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
			},
			[]string{"endpoint", "code"},
		),
	}
}

func (m *Metrics) ObserveBatch(campaign, outcome string) {
	m.batches.WithLabelValues(campaign, outcome).Inc()
}

func (m *Metrics) ObserveResult(campaign string, status domain.Status) {
	m.results.WithLabelValues(campaign, status.Class()).Inc()
}

// ObserveProviderRequest records a provider call; statusCode 0 means the
// request never got a response.
func (m *Metrics) ObserveProviderRequest(endpoint string, statusCode int, duration time.Duration) {
	code := "none"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}

	m.providerRequests.WithLabelValues(endpoint, code).Observe(duration.Seconds())
}
