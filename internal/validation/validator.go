package validation

import (
	"math"
	"strings"

	"github.com/Domenick1991/infygo/internal/domain"
)

const (
	ReasonFlightMissing        = "Flight cannot be null"
	ReasonIDRequired           = "Flight ID is required"
	ReasonRouteRequired        = "Source and destination are required"
	ReasonSameRoute            = "Source and destination cannot be the same"
	ReasonFareNotPositive      = "Fare must be greater than zero"
	ReasonSeatCountNotPositive = "Seat count must be greater than zero"
)

// Validate checks f in a fixed order and reports only the first problem found.
func Validate(f *domain.Flight) error {
	if f == nil {
		return domain.NewValidationError(ReasonFlightMissing)
	}
	if strings.TrimSpace(f.ID) == "" {
		return domain.NewValidationError(ReasonIDRequired)
	}
	if f.Source == "" || f.Destination == "" {
		return domain.NewValidationError(ReasonRouteRequired)
	}
	if strings.EqualFold(f.Source, f.Destination) {
		return domain.NewValidationError(ReasonSameRoute)
	}
	if math.IsNaN(f.Fare) || f.Fare <= 0 {
		return domain.NewValidationError(ReasonFareNotPositive)
	}
	if f.SeatCount <= 0 {
		return domain.NewValidationError(ReasonSeatCountNotPositive)
	}
	return nil
}
