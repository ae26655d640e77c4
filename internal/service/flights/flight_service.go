package flights

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/Domenick1991/infygo/internal/repository"
	"github.com/Domenick1991/infygo/internal/validation"
	"github.com/google/uuid"
)

const reasonSearchArgsMissing = "Search parameters cannot be null"

// FlightUseCase is everything the presentation layers are allowed to call.
type FlightUseCase interface {
	AddFlight(ctx context.Context, flight *domain.Flight) error
	SearchFlights(ctx context.Context, source, destination string, date time.Time) ([]domain.Flight, error)
	GetAllFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
}

// FlightCache is an optional read-through cache for listings and searches.
// GetFlights returns nil, nil on a miss.
type FlightCache interface {
	GetFlights(ctx context.Context, key string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, key string, flights []domain.Flight, ttl time.Duration) error
}

type FlightService struct {
	repo     repository.FlightRepository
	observer Observer
	cache    FlightCache
	cacheTTL time.Duration

	// Cache keys carry the process instance and a generation bumped on every
	// add, so entries from other processes or before an add are never read.
	instance   string
	generation atomic.Uint64
}

type FlightServiceOption func(*FlightService)

func WithObserver(o Observer) FlightServiceOption {
	return func(s *FlightService) {
		s.observer = o
	}
}

func WithCache(cache FlightCache, ttl time.Duration) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		repo:     repo,
		observer: Observers{},
		instance: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.observer == nil {
		s.observer = Observers{}
	}
	return s
}

// AddFlight validates flight and stores it. A rejected flight never reaches
// the repository; the *domain.ValidationError is returned as is.
func (s *FlightService) AddFlight(ctx context.Context, flight *domain.Flight) (err error) {
	s.observer.BeforeAdd(ctx, flight)
	defer func() { s.observer.AfterAdd(ctx, flight, err) }()

	if err = validation.Validate(flight); err != nil {
		return err
	}
	if err = s.repo.Add(ctx, *flight); err != nil {
		return fmt.Errorf("store flight %s: %w", flight.ID, err)
	}
	s.generation.Add(1)
	return nil
}

// SearchFlights trims source and destination and looks up flights on that
// route for the calendar day of date. Case folding is left to the repository.
func (s *FlightService) SearchFlights(ctx context.Context, source, destination string, date time.Time) (found []domain.Flight, err error) {
	s.observer.BeforeSearch(ctx, source, destination, date)
	defer func() { s.observer.AfterSearch(ctx, source, destination, date, len(found), err) }()

	if source == "" || destination == "" || date.IsZero() {
		return nil, domain.InvalidArgument(reasonSearchArgsMissing)
	}

	src, dst := strings.TrimSpace(source), strings.TrimSpace(destination)

	key := s.cacheKey("route", domain.RouteKey(src, dst), date.Format(domain.DateLayout))
	return s.readThrough(ctx, key, func() ([]domain.Flight, error) {
		return s.repo.SearchByRouteAndDate(ctx, src, dst, date)
	})
}

func (s *FlightService) GetAllFlights(ctx context.Context) ([]domain.Flight, error) {
	return s.readThrough(ctx, s.cacheKey("all"), func() ([]domain.Flight, error) {
		return s.repo.List(ctx)
	})
}

func (s *FlightService) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.InvalidArgument("Flight ID is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) readThrough(ctx context.Context, key string, load func() ([]domain.Flight, error)) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := load()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, key, flights, s.cacheTTL)
	}
	return flights, nil
}

func (s *FlightService) cacheKey(parts ...string) string {
	return fmt.Sprintf("%s:%d:%s", s.instance, s.generation.Load(), strings.Join(parts, ":"))
}

var _ FlightUseCase = (*FlightService)(nil)
