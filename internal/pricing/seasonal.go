// Package pricing computes display-only fare adjustments. Nothing here is
// ever written back to stored flights.
package pricing

import (
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
)

// PeakMultiplier is the festival season factor (a 20% increase) applied to displayed fares.
const PeakMultiplier = 1.2

// IsPeakSeason reports whether date falls in December or January.
func IsPeakSeason(date time.Time) bool {
	m := date.Month()
	return m == time.December || m == time.January
}

func DisplayFare(f domain.Flight, isPeak bool) float64 {
	if isPeak {
		return f.Fare * PeakMultiplier
	}
	return f.Fare
}
