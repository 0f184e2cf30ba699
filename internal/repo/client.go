package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-registry/internal/domain"
)

// ClientRepo defines the persistence operations for Clients and their registrations.
type ClientRepo interface {
	// Create inserts a new client and returns it with the DB-generated id.
	// No duplicate checks are made; two clients may share an email.
	Create(ctx context.Context, in domain.ClientInput) (domain.Client, error)

	// GetByID retrieves a single client.
	// Returns domain.ErrNotFound if no client with that ID exists.
	GetByID(ctx context.Context, id int) (domain.Client, error)

	// ListRegisteredTrips returns every trip the client is registered on.
	// Returns domain.ErrNotFound if the client does not exist, and also when the
	// client exists but has no registrations.
	ListRegisteredTrips(ctx context.Context, clientID int) ([]domain.RegisteredTrip, error)
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

// Create inserts a client row and returns the full persisted record.
func (r *pgClientRepo) Create(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	const q = `
		INSERT INTO client (first_name, last_name, email, telephone, pesel)
		VALUES (@first_name, @last_name, @email, @telephone, @pesel)
		RETURNING id_client, first_name, last_name, email, telephone, pesel`

	args := pgx.NamedArgs{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"telephone":  in.Telephone,
		"pesel":      in.Pesel,
	}

	var result domain.Client
	err := withConn(ctx, r.db, func(c db) error {
		var err error
		result, err = scanClient(c.QueryRow(ctx, q, args))
		return err
	})
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a client by primary key.
func (r *pgClientRepo) GetByID(ctx context.Context, id int) (domain.Client, error) {
	const q = `
		SELECT id_client, first_name, last_name, email, telephone, pesel
		FROM client
		WHERE id_client = @id`

	var result domain.Client
	err := withConn(ctx, r.db, func(c db) error {
		var err error
		result, err = scanClient(c.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound("Client %d not found", id)
		}
		return err
	})
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListRegisteredTrips returns the client's registrations joined with their trips.
func (r *pgClientRepo) ListRegisteredTrips(ctx context.Context, clientID int) ([]domain.RegisteredTrip, error) {
	const q = `
		SELECT t.id_trip, t.name, t.description, t.date_from, t.date_to, t.max_people,
		       ct.registered_at, ct.payment_date
		FROM trip t
		JOIN client_trip ct ON ct.id_trip = t.id_trip
		WHERE ct.id_client = @client_id
		ORDER BY t.date_from DESC, t.id_trip`

	var result []domain.RegisteredTrip
	err := withConn(ctx, r.db, func(c db) error {
		exists, err := clientExists(ctx, c, clientID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound("Client %d not found", clientID)
		}

		rows, err := c.Query(ctx, q, pgx.NamedArgs{"client_id": clientID})
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			rt, err := scanRegisteredTrip(rows)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			result = append(result, rt)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows: %w", err)
		}
		rows.Close()

		if len(result) == 0 {
			return domain.NotFound("Client %d hasn't any registered trips", clientID)
		}

		return attachCountries(ctx, c, result, registeredTrip)
	})
	if err != nil {
		return nil, fmt.Errorf("repo.ClientRepo.ListRegisteredTrips: %w", err)
	}
	return result, nil
}

func scanClient(s scanner) (domain.Client, error) {
	var c domain.Client
	err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Telephone, &c.Pesel)
	return c, err
}

// scanRegisteredTrip maps a trip row plus its client_trip columns.
// A NULL payment_date becomes a nil PaymentDate.
func scanRegisteredTrip(s scanner) (domain.RegisteredTrip, error) {
	var (
		rt   domain.RegisteredTrip
		paid pgtype.Int4
	)
	err := s.Scan(&rt.ID, &rt.Name, &rt.Description, &rt.DateFrom, &rt.DateTo, &rt.MaxPeople,
		&rt.RegisteredAt, &paid)
	if err != nil {
		return domain.RegisteredTrip{}, err
	}
	if paid.Valid {
		p := int(paid.Int32)
		rt.PaymentDate = &p
	}
	return rt, nil
}
