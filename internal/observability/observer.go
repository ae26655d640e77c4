package observability

import (
	"context"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/Domenick1991/infygo/internal/service/flights"
)

// MetricsObserver counts service outcomes.
type MetricsObserver struct {
	flights.NopObserver
	m *Metrics
}

func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{m: m}
}

func (o *MetricsObserver) AfterAdd(_ context.Context, _ *domain.Flight, err error) {
	if err != nil {
		o.m.FlightsRejected.Inc()
		return
	}
	o.m.FlightsAdded.Inc()
}

func (o *MetricsObserver) AfterSearch(_ context.Context, _, _ string, _ time.Time, results int, err error) {
	if err != nil {
		o.m.SearchesTotal.WithLabelValues("error").Inc()
		return
	}
	outcome := "found"
	if results == 0 {
		outcome = "empty"
	}
	o.m.SearchesTotal.WithLabelValues(outcome).Inc()
	o.m.SearchResults.Observe(float64(results))
}

var _ flights.Observer = (*MetricsObserver)(nil)
