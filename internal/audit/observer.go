package audit

import (
	"context"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/Domenick1991/infygo/internal/logger"
	"github.com/Domenick1991/infygo/internal/service/flights"
	"github.com/google/uuid"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// RetryPublisher is used for add events when the publisher supports it.
type RetryPublisher interface {
	PublishWithRetry(ctx context.Context, topic, key string, value any, maxRetries int) error
}

const addEventAttempts = 3

// Observer publishes one event per completed add and per search.
// Publish failures are logged and never reach the caller.
type Observer struct {
	flights.NopObserver
	publisher Publisher
	topic     string
	log       logger.Client
	now       func() time.Time
}

func NewObserver(publisher Publisher, topic string, log logger.Client) *Observer {
	if log == nil {
		log = logger.Nop{}
	}
	return &Observer{publisher: publisher, topic: topic, log: log, now: time.Now}
}

func (o *Observer) AfterAdd(ctx context.Context, flight *domain.Flight, err error) {
	if flight == nil {
		return
	}
	event := o.newEvent(EventFlightAdded, flight.Source, flight.Destination, flight.JourneyDate)
	event.FlightID = flight.ID
	if err != nil {
		event.Type = EventFlightRejected
		event.Reason = err.Error()
	}
	o.publish(ctx, event, addEventAttempts)
}

func (o *Observer) BeforeSearch(ctx context.Context, source, destination string, date time.Time) {
	o.publish(ctx, o.newEvent(EventFlightSearch, source, destination, date), 1)
}

func (o *Observer) newEvent(t EventType, source, destination string, date time.Time) Event {
	e := Event{
		ID:          uuid.NewString(),
		Type:        t,
		Source:      source,
		Destination: destination,
		OccurredAt:  o.now().UTC(),
	}
	if !date.IsZero() {
		e.JourneyDate = date.Format(domain.DateLayout)
	}
	return e
}

func (o *Observer) publish(ctx context.Context, e Event, attempts int) {
	if o.publisher == nil || o.topic == "" {
		return
	}
	var err error
	if rp, ok := o.publisher.(RetryPublisher); ok && attempts > 1 {
		err = rp.PublishWithRetry(ctx, o.topic, e.Key(), e, attempts)
	} else {
		err = o.publisher.Publish(ctx, o.topic, e.Key(), e)
	}
	if err != nil {
		o.log.Warn("failed to publish audit event",
			logger.F("type", string(e.Type)),
			logger.F("event_id", e.ID),
			logger.F("error", err),
		)
	}
}

var _ flights.Observer = (*Observer)(nil)
