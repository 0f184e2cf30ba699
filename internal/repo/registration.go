package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-registry/internal/domain"
)

// RegistrationRepo defines the write operations on client_trip.
type RegistrationRepo interface {
	// Register adds the client to the trip, stamped with today's date.
	// Checks run in order and stop at the first failure:
	//   - domain.ErrNotFound if the client does not exist
	//   - domain.ErrNotFound if the trip does not exist
	//   - domain.ErrCapacityExceeded if the trip already holds max_people clients
	//   - domain.ErrDuplicateRegistration if the client is already on the trip
	Register(ctx context.Context, clientID, tripID int) error

	// Unregister removes the client from the trip.
	// Returns domain.ErrNotFound if the client, the trip, or the registration is missing.
	Unregister(ctx context.Context, clientID, tripID int) error
}

// RegistrationOption configures a RegistrationRepo.
type RegistrationOption func(*pgRegistrationRepo)

// WithClock overrides the time source used for registered_at.
func WithClock(now func() time.Time) RegistrationOption {
	return func(r *pgRegistrationRepo) { r.now = now }
}

// pgRegistrationRepo is the Postgres implementation of RegistrationRepo.
type pgRegistrationRepo struct {
	db  db
	now func() time.Time
}

// NewRegistrationRepo constructs a RegistrationRepo backed by the provided db connection.
func NewRegistrationRepo(db db, opts ...RegistrationOption) RegistrationRepo {
	r := &pgRegistrationRepo{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register runs the existence and capacity checks and the insert in one
// transaction. The trip row is locked FOR UPDATE before counting, so two
// concurrent registrations for the last seat can't both succeed.
func (r *pgRegistrationRepo) Register(ctx context.Context, clientID, tripID int) error {
	const q = `
		INSERT INTO client_trip (id_client, id_trip, registered_at)
		VALUES (@client_id, @trip_id, @registered_at)`

	err := withConn(ctx, r.db, func(c db) error {
		return inTx(ctx, c, func(tx pgx.Tx) error {
			exists, err := clientExists(ctx, tx, clientID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.NotFound("Client %d not found", clientID)
			}

			maxPeople, err := lockTripCapacity(ctx, tx, tripID)
			if err != nil {
				return err
			}

			members, err := currentMemberCount(ctx, tx, tripID)
			if err != nil {
				return err
			}
			if members >= maxPeople {
				return domain.ErrCapacityExceeded
			}

			_, err = tx.Exec(ctx, q, pgx.NamedArgs{
				"client_id":     clientID,
				"trip_id":       tripID,
				"registered_at": domain.DateKey(r.now()),
			})
			if isUniqueViolation(err) {
				return domain.ErrDuplicateRegistration
			}
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("repo.RegistrationRepo.Register: %w", err)
	}
	return nil
}

// Unregister deletes the client_trip row after confirming both parents exist.
func (r *pgRegistrationRepo) Unregister(ctx context.Context, clientID, tripID int) error {
	const q = `DELETE FROM client_trip WHERE id_client = @client_id AND id_trip = @trip_id`

	err := withConn(ctx, r.db, func(c db) error {
		exists, err := clientExists(ctx, c, clientID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound("Client %d not found", clientID)
		}

		exists, err = tripExists(ctx, c, tripID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound("Trip %d not found", tripID)
		}

		tag, err := c.Exec(ctx, q, pgx.NamedArgs{"client_id": clientID, "trip_id": tripID})
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.NotFound("Client %d hasn't been registered to the trip %d", clientID, tripID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.RegistrationRepo.Unregister: %w", err)
	}
	return nil
}
