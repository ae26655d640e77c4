package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
)

// MemoryFlightRepository keeps flights for the lifetime of the process.
// The primary map and the route index share one lock so that every flight
// reachable by id is also reachable by route.
type MemoryFlightRepository struct {
	mu      sync.RWMutex
	flights map[string]domain.Flight
	order   []string
	routes  map[string][]domain.Flight
}

func NewMemoryFlightRepository() *MemoryFlightRepository {
	return &MemoryFlightRepository{
		flights: make(map[string]domain.Flight),
		routes:  make(map[string][]domain.Flight),
	}
}

// Add inserts flight, replacing any flight with the same id. A replaced
// flight is also dropped from its route list before the new one is appended.
func (r *MemoryFlightRepository) Add(_ context.Context, flight domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.flights[flight.ID]; ok {
		r.unindex(prev)
	} else {
		r.order = append(r.order, flight.ID)
	}
	r.flights[flight.ID] = flight

	key := flight.RouteKey()
	r.routes[key] = append(r.routes[key], flight)
	return nil
}

func (r *MemoryFlightRepository) SearchByRouteAndDate(_ context.Context, source, destination string, date time.Time) ([]domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]domain.Flight, 0)
	for _, f := range r.routes[domain.RouteKey(source, destination)] {
		if domain.SameDay(f.JourneyDate, date) {
			found = append(found, f)
		}
	}
	return found, nil
}

// List returns a copy of every stored flight in first-insertion order.
func (r *MemoryFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := make([]domain.Flight, 0, len(r.order))
	for _, id := range r.order {
		flights = append(flights, r.flights[id])
	}
	return flights, nil
}

func (r *MemoryFlightRepository) GetByID(_ context.Context, id string) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flights[id]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &f, nil
}

// unindex removes prev from its route list. Caller holds the write lock.
func (r *MemoryFlightRepository) unindex(prev domain.Flight) {
	key := prev.RouteKey()
	list := r.routes[key]
	for i, f := range list {
		if f.ID != prev.ID {
			continue
		}
		kept := make([]domain.Flight, 0, len(list)-1)
		kept = append(kept, list[:i]...)
		kept = append(kept, list[i+1:]...)
		if len(kept) == 0 {
			delete(r.routes, key)
		} else {
			r.routes[key] = kept
		}
		return
	}
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
