package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-registry/internal/domain"
)

// clientExists probes the client table for id.
func clientExists(ctx context.Context, q db, clientID int) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM client WHERE id_client = @id)`

	var exists bool
	if err := q.QueryRow(ctx, sql, pgx.NamedArgs{"id": clientID}).Scan(&exists); err != nil {
		return false, fmt.Errorf("client exists: %w", err)
	}
	return exists, nil
}

// tripExists probes the trip table for id.
func tripExists(ctx context.Context, q db, tripID int) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM trip WHERE id_trip = @id)`

	var exists bool
	if err := q.QueryRow(ctx, sql, pgx.NamedArgs{"id": tripID}).Scan(&exists); err != nil {
		return false, fmt.Errorf("trip exists: %w", err)
	}
	return exists, nil
}

// lockTripCapacity returns max_people for the trip and holds a row lock on it
// until the surrounding transaction ends. Concurrent registrations for the same
// trip queue behind the lock, so the member count read afterwards can't go stale
// before the insert. Must be called inside a transaction.
func lockTripCapacity(ctx context.Context, tx pgx.Tx, tripID int) (int, error) {
	const sql = `SELECT max_people FROM trip WHERE id_trip = @id FOR UPDATE`

	var maxPeople int
	err := tx.QueryRow(ctx, sql, pgx.NamedArgs{"id": tripID}).Scan(&maxPeople)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NotFound("Trip %d not found", tripID)
		}
		return 0, fmt.Errorf("lock trip: %w", err)
	}
	return maxPeople, nil
}

// currentMemberCount returns how many clients are registered on the trip.
func currentMemberCount(ctx context.Context, q db, tripID int) (int, error) {
	const sql = `SELECT COUNT(*) FROM client_trip WHERE id_trip = @id`

	var n int
	if err := q.QueryRow(ctx, sql, pgx.NamedArgs{"id": tripID}).Scan(&n); err != nil {
		return 0, fmt.Errorf("member count: %w", err)
	}
	return n, nil
}

// countriesForTrip returns every country linked to the trip, ordered by name.
// Always returns a non-nil slice.
func countriesForTrip(ctx context.Context, q db, tripID int) ([]domain.Country, error) {
	const sql = `
		SELECT c.name
		FROM country c
		JOIN country_trip ct ON ct.id_country = c.id_country
		WHERE ct.id_trip = @id
		ORDER BY c.name`

	rows, err := q.Query(ctx, sql, pgx.NamedArgs{"id": tripID})
	if err != nil {
		return nil, fmt.Errorf("countries for trip %d: %w", tripID, err)
	}
	defer rows.Close()

	countries := []domain.Country{}
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.Name); err != nil {
			return nil, fmt.Errorf("countries for trip %d: scan: %w", tripID, err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("countries for trip %d: rows: %w", tripID, err)
	}
	return countries, nil
}

// attachCountries fills Countries in place on the trip that trip returns for each item.
// The rows the items were read from must already be closed: a pgx connection
// can't run a second query while a result set is still open on it.
func attachCountries[T any](ctx context.Context, q db, items []T, trip func(*T) *domain.Trip) error {
	for i := range items {
		t := trip(&items[i])
		countries, err := countriesForTrip(ctx, q, t.ID)
		if err != nil {
			return err
		}
		t.Countries = countries
	}
	return nil
}

func tripItself(t *domain.Trip) *domain.Trip { return t }

func registeredTrip(rt *domain.RegisteredTrip) *domain.Trip { return &rt.Trip }
