package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
type mockTripServicer struct {
	list func(ctx context.Context) ([]domain.Trip, error)
}

func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          5,
		Name:        "Adriatic Coast",
		Description: "Dalmatia",
		DateFrom:    time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC),
		MaxPeople:   20,
		Countries:   []domain.Country{{Name: "Croatia"}, {Name: "Slovenia"}},
	}
}

func TestListTrips_200(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return []domain.Trip{tripFixture(), tripFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp []domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, tripFixture(), resp[0])
}

// TestListTrips_200_FieldNames pins the camelCase wire names.
func TestListTrips_200_FieldNames(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) { return []domain.Trip{tripFixture()}, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil).ServeHTTP(rec, req)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	for _, key := range []string{"id", "name", "description", "dateFrom", "dateTo", "maxPeople", "countries"} {
		assert.Contains(t, resp[0], key)
	}
}

func TestListTrips_200_Empty(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) { return []domain.Trip{}, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Must be a JSON array, not null.
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListTrips_500(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, errors.New("connection refused") },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "internal_error", resp.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused", "store errors must not leak")
}
