package audit

import (
	"context"

	"github.com/Domenick1991/infygo/internal/logger"
)

// LogSink records consumed audit events in the structured log.
type LogSink struct {
	log logger.Client
}

func NewLogSink(log logger.Client) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Handle(_ context.Context, e Event) error {
	fields := []logger.Field{
		logger.F("event_id", e.ID),
		logger.F("type", string(e.Type)),
		logger.F("source", e.Source),
		logger.F("destination", e.Destination),
		logger.F("journey_date", e.JourneyDate),
		logger.F("occurred_at", e.OccurredAt),
	}
	if e.FlightID != "" {
		fields = append(fields, logger.F("flight_id", e.FlightID))
	}
	if e.Reason != "" {
		fields = append(fields, logger.F("reason", e.Reason))
	}
	s.log.Info("audit event", fields...)
	return nil
}
