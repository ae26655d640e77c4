package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

// FlightRepository stores flights and answers exact route/date lookups.
// Callers validate flights before Add.
type FlightRepository interface {
	Add(ctx context.Context, flight domain.Flight) error
	SearchByRouteAndDate(ctx context.Context, source, destination string, date time.Time) ([]domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}
