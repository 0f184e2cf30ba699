package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
	"github.com/pkordes/trip-registry/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
type mockTripRepo struct {
	list func(ctx context.Context) ([]domain.Trip, error)
}

func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

func TestTripService_List(t *testing.T) {
	trips := []domain.Trip{
		{ID: 1, Name: "Adriatic Coast", Countries: []domain.Country{{Name: "Croatia"}}},
		{ID: 2, Name: "Fjords by Rail", Countries: []domain.Country{{Name: "Norway"}}},
	}
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return trips, nil },
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, trips, got)
}

func TestTripService_List_Empty(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, nil },
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	// Should return an empty slice, not nil, so it encodes as [] rather than null.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, repoErr },
	}
	svc := service.NewTripService(r)

	_, err := svc.List(context.Background())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}
