package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-registry/internal/domain"
)

// TripRepo defines the read operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// List returns every trip ordered by date_from descending, then id.
	// Each trip carries its full country set.
	List(ctx context.Context) ([]domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// List returns all trips, most recent departure first.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT id_trip, name, description, date_from, date_to, max_people
		FROM trip
		ORDER BY date_from DESC, id_trip`

	var trips []domain.Trip
	err := withConn(ctx, r.db, func(c db) error {
		rows, err := c.Query(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			t, err := scanTrip(rows)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			trips = append(trips, t)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows: %w", err)
		}
		rows.Close()

		return attachCountries(ctx, c, trips, tripItself)
	})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// scanTrip maps the six trip columns into a domain.Trip.
// Countries are left nil for the caller to attach.
func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip
	err := s.Scan(&t.ID, &t.Name, &t.Description, &t.DateFrom, &t.DateTo, &t.MaxPeople)
	return t, err
}
