// Package seed loads the demo inventory used at startup.
package seed

import (
	"context"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/Domenick1991/infygo/internal/idgen"
	"github.com/Domenick1991/infygo/internal/logger"
)

type Adder interface {
	AddFlight(ctx context.Context, flight *domain.Flight) error
}

type sample struct {
	airline     string
	source      string
	destination string
	fare        float64
	seats       int
}

var samples = []sample{
	{"Air India", "Delhi", "Mumbai", 5000, 120},
	{"IndiGo", "Mumbai", "Kolkata", 3500, 180},
	{"SpiceJet", "Bangalore", "Chennai", 4000, 150},
	{"Vistara", "Chennai", "Hyderabad", 6000, 100},
	{"Air India", "Mumbai", "Delhi", 5200, 110},
}

// SampleFlights builds the demo flights relative to today. Two of them fall
// in peak season (25 Dec and 10 Jan of today's year).
func SampleFlights(today time.Time, ids idgen.Generator) []domain.Flight {
	today = domain.DateOf(today)
	dates := []time.Time{
		today.AddDate(0, 0, 7),
		today.AddDate(0, 0, 14),
		domain.NewDate(today.Year(), time.December, 25),
		domain.NewDate(today.Year(), time.January, 10),
		today.AddDate(0, 0, 21),
	}

	flights := make([]domain.Flight, 0, len(samples))
	for i, s := range samples {
		flights = append(flights, domain.Flight{
			ID:          ids.NextID(),
			Airline:     s.airline,
			Source:      s.source,
			Destination: s.destination,
			Fare:        s.fare,
			JourneyDate: dates[i%len(dates)],
			SeatCount:   s.seats,
		})
	}
	return flights
}

// Load adds the sample flights. Failures are logged and skipped.
func Load(ctx context.Context, svc Adder, today time.Time, ids idgen.Generator, log logger.Client) int {
	added := 0
	for _, f := range SampleFlights(today, ids) {
		if err := svc.AddFlight(ctx, &f); err != nil {
			log.Error("Error adding sample flight", logger.F("flight_id", f.ID), logger.F("error", err))
			continue
		}
		added++
	}
	return added
}
