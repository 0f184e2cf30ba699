package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
	"github.com/pkordes/trip-registry/testutil"
)

func clientInputFixture() domain.ClientInput {
	return domain.ClientInput{
		FirstName: "Anna",
		LastName:  "Nowak",
		Email:     "anna@example.pl",
		Telephone: "+48600100200",
		Pesel:     "85020312345",
	}
}

func TestClientRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewClientRepo(tx)
	ctx := context.Background()

	first, err := r.Create(ctx, clientInputFixture())
	require.NoError(t, err)
	second, err := r.Create(ctx, clientInputFixture())
	require.NoError(t, err, "duplicate email is allowed")

	assert.NotZero(t, first.ID, "ID should be DB-generated")
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Anna", first.FirstName)
	assert.Equal(t, "Nowak", first.LastName)
	assert.Equal(t, "anna@example.pl", first.Email)
	assert.Equal(t, "+48600100200", first.Telephone)
	assert.Equal(t, "85020312345", first.Pesel)

	got, err := r.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)

	_, err := repo.NewClientRepo(tx).GetByID(context.Background(), testutil.MissingID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRepo_ListRegisteredTrips_ClientMissing(t *testing.T) {
	tx := newTestTx(t)

	_, err := repo.NewClientRepo(tx).ListRegisteredTrips(context.Background(), testutil.MissingID)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

// TestClientRepo_ListRegisteredTrips_NoRegistrations pins the contract that an
// existing client with zero registrations is reported as not found, not as an
// empty list.
func TestClientRepo_ListRegisteredTrips_NoRegistrations(t *testing.T) {
	tx := newTestTx(t)
	clientID := testutil.InsertClient(t, tx, "Lonely")

	trips, err := repo.NewClientRepo(tx).ListRegisteredTrips(context.Background(), clientID)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "hasn't any registered trips")
	assert.Nil(t, trips)
}

func TestClientRepo_ListRegisteredTrips(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()

	clientID := testutil.InsertClient(t, tx, "Traveller")
	paidTrip := testutil.InsertTrip(t, tx, testutil.TripFixture{Countries: []string{"Betaland"}})
	unpaidTrip := testutil.InsertTrip(t, tx, testutil.TripFixture{
		DateFrom: time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	reg := repo.NewRegistrationRepo(tx, repo.WithClock(func() time.Time { return now }))
	require.NoError(t, reg.Register(ctx, clientID, paidTrip))
	require.NoError(t, reg.Register(ctx, clientID, unpaidTrip))

	// Payment is recorded by an external process; simulate it.
	_, err := tx.Exec(ctx,
		`UPDATE client_trip SET payment_date = 20261020 WHERE id_client = @c AND id_trip = @t`,
		pgx.NamedArgs{"c": clientID, "t": paidTrip})
	require.NoError(t, err)

	got, err := repo.NewClientRepo(tx).ListRegisteredTrips(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// date_from DESC: paidTrip (2030) before unpaidTrip (2029).
	assert.Equal(t, paidTrip, got[0].ID)
	assert.Equal(t, 20261014, got[0].RegisteredAt)
	require.NotNil(t, got[0].PaymentDate)
	assert.Equal(t, 20261020, *got[0].PaymentDate)
	assert.Equal(t, []domain.Country{{Name: "Betaland"}}, got[0].Countries)

	assert.Equal(t, unpaidTrip, got[1].ID)
	assert.Nil(t, got[1].PaymentDate, "unpaid registration has no payment date")
	assert.NotNil(t, got[1].Countries)
}
