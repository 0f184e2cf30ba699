package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripFixture describes a trip row to insert. The API has no way to create
// trips, so tests seed them directly.
type TripFixture struct {
	Name      string
	MaxPeople int
	DateFrom  time.Time
	Countries []string
}

// InsertTrip inserts a trip and links it to the named countries, creating any
// country that doesn't exist yet. An empty Name gets a unique generated one.
// Returns the new trip id.
func InsertTrip(t *testing.T, db Execer, f TripFixture) int {
	t.Helper()
	ctx := context.Background()

	if f.Name == "" {
		f.Name = "Trip " + uuid.NewString()
	}
	if f.MaxPeople == 0 {
		f.MaxPeople = 10
	}
	if f.DateFrom.IsZero() {
		f.DateFrom = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	var id int
	err := db.QueryRow(ctx, `
		INSERT INTO trip (name, description, date_from, date_to, max_people)
		VALUES (@name, @description, @date_from, @date_to, @max_people)
		RETURNING id_trip`,
		pgx.NamedArgs{
			"name":        f.Name,
			"description": "fixture",
			"date_from":   f.DateFrom,
			"date_to":     f.DateFrom.AddDate(0, 0, 7),
			"max_people":  f.MaxPeople,
		}).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertTrip: %v", err)
	}

	for _, name := range f.Countries {
		_, err := db.Exec(ctx, `
			WITH c AS (
				INSERT INTO country (name) VALUES (@name)
				ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
				RETURNING id_country
			)
			INSERT INTO country_trip (id_country, id_trip)
			SELECT id_country, @trip_id FROM c`,
			pgx.NamedArgs{"name": name, "trip_id": id})
		if err != nil {
			t.Fatalf("testutil.InsertTrip: link country %q: %v", name, err)
		}
	}
	return id
}

// InsertClient inserts a client with valid placeholder fields and returns its id.
func InsertClient(t *testing.T, db Execer, lastName string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO client (first_name, last_name, email, telephone, pesel)
		VALUES ('Test', @last_name, 'test@example.com', '+48123456789', '90010112345')
		RETURNING id_client`,
		pgx.NamedArgs{"last_name": lastName}).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertClient: %v", err)
	}
	return id
}

// CountRegistrations returns the number of client_trip rows for the trip.
func CountRegistrations(t *testing.T, db Execer, tripID int) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM client_trip WHERE id_trip = @id`,
		pgx.NamedArgs{"id": tripID}).Scan(&n)
	if err != nil {
		t.Fatalf("testutil.CountRegistrations: %v", err)
	}
	return n
}

// MissingID is an id no serial column will reach in a test database.
const MissingID = 2147483000
