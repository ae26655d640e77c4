package domain

import (
	"strings"
	"time"
)

// DateLayout is the yyyy-MM-dd form used for journey dates everywhere.
const DateLayout = "2006-01-02"

type Flight struct {
	ID          string    `json:"flight_id"`
	Airline     string    `json:"airline"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Fare        float64   `json:"fare"`
	JourneyDate time.Time `json:"journey_date"`
	SeatCount   int       `json:"seat_count"`
}

// RouteKey identifies the directional route the flight serves.
func (f Flight) RouteKey() string {
	return RouteKey(f.Source, f.Destination)
}

// RouteKey lowercases both ends and joins them with "-". No trimming happens here.
func RouteKey(source, destination string) string {
	return strings.ToLower(source) + "-" + strings.ToLower(destination)
}

// NewDate returns the calendar day as midnight UTC.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-MM-dd string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// DateOf drops the time-of-day and location of t, keeping its calendar day.
func DateOf(t time.Time) time.Time {
	return NewDate(t.Date())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
