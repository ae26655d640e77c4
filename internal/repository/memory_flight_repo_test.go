package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFlight(id, source, destination string, day int) domain.Flight {
	return domain.Flight{
		ID:          id,
		Airline:     "Air India",
		Source:      source,
		Destination: destination,
		Fare:        5000,
		JourneyDate: domain.NewDate(2025, 12, day),
		SeatCount:   120,
	}
}

func TestMemoryFlightRepository_AddAndList(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()

	f1 := sampleFlight("FLT1001", "Delhi", "Mumbai", 25)
	f2 := sampleFlight("FLT1002", "Mumbai", "Kolkata", 26)
	require.NoError(t, repo.Add(ctx, f1))
	require.NoError(t, repo.Add(ctx, f2))

	flights, err := repo.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.Flight{f1, f2}, flights)
}

func TestMemoryFlightRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, sampleFlight("FLT1001", "Delhi", "Mumbai", 25)))

	flights, _ := repo.List(ctx)
	flights[0].Fare = 1

	again, _ := repo.List(ctx)
	assert.Equal(t, 5000.0, again[0].Fare)
}

func TestMemoryFlightRepository_SearchIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	f := sampleFlight("FLT1001", "Delhi", "Mumbai", 25)
	require.NoError(t, repo.Add(ctx, f))

	upper, err := repo.SearchByRouteAndDate(ctx, "DELHI", "mumbai", domain.NewDate(2025, 12, 25))
	require.NoError(t, err)
	lower, err := repo.SearchByRouteAndDate(ctx, "delhi", "MUMBAI", domain.NewDate(2025, 12, 25))
	require.NoError(t, err)

	assert.Equal(t, []domain.Flight{f}, upper)
	assert.Equal(t, upper, lower)
}

func TestMemoryFlightRepository_SearchDoesNotTrim(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, sampleFlight("FLT1001", "Delhi", "Mumbai", 25)))

	found, err := repo.SearchByRouteAndDate(ctx, " Delhi", "Mumbai", domain.NewDate(2025, 12, 25))

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMemoryFlightRepository_SearchMatchesExactDay(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, sampleFlight("FLT1001", "Delhi", "Mumbai", 25)))

	found, err := repo.SearchByRouteAndDate(ctx, "Delhi", "Mumbai", domain.NewDate(2025, 12, 26))

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMemoryFlightRepository_SearchUnknownRoute(t *testing.T) {
	repo := NewMemoryFlightRepository()

	found, err := repo.SearchByRouteAndDate(context.Background(), "Paris", "Tokyo", domain.NewDate(2025, 12, 25))

	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestMemoryFlightRepository_SearchKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	a := sampleFlight("FLT1003", "Delhi", "Mumbai", 25)
	b := sampleFlight("FLT1001", "delhi", "MUMBAI", 25)
	c := sampleFlight("FLT1002", "Delhi", "Mumbai", 25)
	for _, f := range []domain.Flight{a, b, c} {
		require.NoError(t, repo.Add(ctx, f))
	}

	found, err := repo.SearchByRouteAndDate(ctx, "Delhi", "Mumbai", domain.NewDate(2025, 12, 25))

	require.NoError(t, err)
	assert.Equal(t, []domain.Flight{a, b, c}, found)
}

func TestMemoryFlightRepository_DuplicateIDReplacesIndexEntry(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	date := domain.NewDate(2025, 12, 25)

	original := sampleFlight("FLT1001", "Delhi", "Mumbai", 25)
	require.NoError(t, repo.Add(ctx, original))

	moved := sampleFlight("FLT1001", "Chennai", "Hyderabad", 25)
	moved.Fare = 6000
	require.NoError(t, repo.Add(ctx, moved))

	oldRoute, err := repo.SearchByRouteAndDate(ctx, "Delhi", "Mumbai", date)
	require.NoError(t, err)
	assert.Empty(t, oldRoute)

	newRoute, err := repo.SearchByRouteAndDate(ctx, "Chennai", "Hyderabad", date)
	require.NoError(t, err)
	assert.Equal(t, []domain.Flight{moved}, newRoute)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Flight{moved}, all)
}

func TestMemoryFlightRepository_DuplicateIDSameRouteNoDuplicate(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	f := sampleFlight("FLT1001", "Delhi", "Mumbai", 25)

	require.NoError(t, repo.Add(ctx, f))
	require.NoError(t, repo.Add(ctx, f))

	found, err := repo.SearchByRouteAndDate(ctx, "Delhi", "Mumbai", f.JourneyDate)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestMemoryFlightRepository_GetByID(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()
	f := sampleFlight("FLT1001", "Delhi", "Mumbai", 25)
	require.NoError(t, repo.Add(ctx, f))

	got, err := repo.GetByID(ctx, "FLT1001")
	require.NoError(t, err)
	assert.Equal(t, &f, got)

	_, err = repo.GetByID(ctx, "FLT9999")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestMemoryFlightRepository_ConcurrentAdds(t *testing.T) {
	repo := NewMemoryFlightRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := sampleFlight(fmt.Sprintf("FLT%d", 2000+i), "Delhi", "Mumbai", 25)
			_ = repo.Add(ctx, f)
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	found, err := repo.SearchByRouteAndDate(ctx, "Delhi", "Mumbai", domain.NewDate(2025, 12, 25))
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Len(t, found, 50)
}
