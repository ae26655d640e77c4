package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flight_inventory"

type Metrics struct {
	FlightsAdded        prometheus.Counter
	FlightsRejected     prometheus.Counter
	SearchesTotal       *prometheus.CounterVec
	SearchResults       prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics registers every collector on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FlightsAdded:    factory.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "flights_added_total", Help: "Flights accepted into inventory"}),
		FlightsRejected: factory.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "flights_rejected_total", Help: "Flights rejected by validation or storage"}),
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "searches_total", Help: "Flight searches by outcome"},
			[]string{"outcome"},
		),
		SearchResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of flights returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}
