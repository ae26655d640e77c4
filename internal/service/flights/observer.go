package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/Domenick1991/infygo/internal/logger"
)

// Observer is notified around service calls. It sees the raw call arguments
// and has no way to change the outcome of a call.
type Observer interface {
	BeforeAdd(ctx context.Context, flight *domain.Flight)
	AfterAdd(ctx context.Context, flight *domain.Flight, err error)
	BeforeSearch(ctx context.Context, source, destination string, date time.Time)
	AfterSearch(ctx context.Context, source, destination string, date time.Time, results int, err error)
}

// Observers fans every notification out in order.
type Observers []Observer

func (o Observers) BeforeAdd(ctx context.Context, flight *domain.Flight) {
	for _, obs := range o {
		obs.BeforeAdd(ctx, flight)
	}
}

func (o Observers) AfterAdd(ctx context.Context, flight *domain.Flight, err error) {
	for _, obs := range o {
		obs.AfterAdd(ctx, flight, err)
	}
}

func (o Observers) BeforeSearch(ctx context.Context, source, destination string, date time.Time) {
	for _, obs := range o {
		obs.BeforeSearch(ctx, source, destination, date)
	}
}

func (o Observers) AfterSearch(ctx context.Context, source, destination string, date time.Time, results int, err error) {
	for _, obs := range o {
		obs.AfterSearch(ctx, source, destination, date, results, err)
	}
}

// NopObserver can be embedded to implement only the hooks you need.
type NopObserver struct{}

func (NopObserver) BeforeAdd(context.Context, *domain.Flight)                          {}
func (NopObserver) AfterAdd(context.Context, *domain.Flight, error)                    {}
func (NopObserver) BeforeSearch(context.Context, string, string, time.Time)            {}
func (NopObserver) AfterSearch(context.Context, string, string, time.Time, int, error) {}

// LoggingObserver writes an audit trail of service calls.
type LoggingObserver struct {
	NopObserver
	log logger.Client
}

func NewLoggingObserver(log logger.Client) *LoggingObserver {
	return &LoggingObserver{log: log}
}

func (o *LoggingObserver) BeforeAdd(_ context.Context, flight *domain.Flight) {
	if flight == nil {
		return
	}
	o.log.Info("Adding flight",
		logger.F("flight_id", flight.ID),
		logger.F("source", flight.Source),
		logger.F("destination", flight.Destination),
		logger.F("journey_date", flight.JourneyDate.Format(domain.DateLayout)),
	)
}

func (o *LoggingObserver) AfterAdd(_ context.Context, flight *domain.Flight, err error) {
	if flight == nil {
		return
	}
	if err != nil {
		o.log.Warn("Flight rejected", logger.F("flight_id", flight.ID), logger.F("error", err))
		return
	}
	o.log.Info("Flight added successfully", logger.F("flight_id", flight.ID))
}

func (o *LoggingObserver) BeforeSearch(_ context.Context, source, destination string, date time.Time) {
	o.log.Info("Searching flights",
		logger.F("source", source),
		logger.F("destination", destination),
		logger.F("journey_date", date.Format(domain.DateLayout)),
	)
}

var (
	_ Observer = Observers(nil)
	_ Observer = NopObserver{}
	_ Observer = (*LoggingObserver)(nil)
)
