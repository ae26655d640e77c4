// Package audit turns flight service calls into events on a Kafka topic and
// reads them back in the worker.
package audit

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventType string

const (
	EventFlightAdded    EventType = "flight_added"
	EventFlightRejected EventType = "flight_rejected"
	EventFlightSearch   EventType = "flight_search"
)

type Event struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	FlightID    string    `json:"flight_id,omitempty"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	JourneyDate string    `json:"journey_date"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Key is the partition key: the flight id when there is one, otherwise the route.
func (e Event) Key() string {
	if e.FlightID != "" {
		return e.FlightID
	}
	return e.Source + "-" + e.Destination
}

func Decode(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, fmt.Errorf("decode audit event: %w", err)
	}
	if e.Type == "" {
		return Event{}, fmt.Errorf("decode audit event: missing type")
	}
	return e, nil
}
