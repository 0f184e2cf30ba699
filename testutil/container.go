package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// postgresImage is the image started by StartPostgres.
const postgresImage = "postgres:16-alpine"

// ContainersEnabled reports whether integration tests may start their own
// Postgres container when TEST_DATABASE_URL is not set.
func ContainersEnabled() bool {
	return os.Getenv("TEST_POSTGRES_CONTAINER") == "true"
}

// StartPostgres runs a disposable Postgres container and returns its DSN and a
// function that terminates it. Intended for TestMain, where no *testing.T exists.
func StartPostgres(ctx context.Context) (string, func(), error) {
	container, err := pgmodule.Run(ctx,
		postgresImage,
		pgmodule.WithDatabase("trips_test"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return "", nil, fmt.Errorf("testutil.StartPostgres: run: %w", err)
	}

	terminate := func() { _ = container.Terminate(context.Background()) }

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("testutil.StartPostgres: connection string: %w", err)
	}
	return dsn, terminate, nil
}

// ResolveDSN returns TEST_DATABASE_URL, or starts a container when that is
// unset and ContainersEnabled. The returned cleanup is never nil. An empty DSN
// with a nil error means no database is available and tests should skip.
//
// When a container is started, TEST_DATABASE_URL is set to its DSN so that
// NewPool and NewSQLDB pick it up.
func ResolveDSN(ctx context.Context) (string, func(), error) {
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		return dsn, func() {}, nil
	}
	if !ContainersEnabled() {
		return "", func() {}, nil
	}
	dsn, terminate, err := StartPostgres(ctx)
	if err != nil {
		return "", func() {}, err
	}
	if err := os.Setenv("TEST_DATABASE_URL", dsn); err != nil {
		terminate()
		return "", func() {}, fmt.Errorf("testutil.ResolveDSN: %w", err)
	}
	return dsn, terminate, nil
}
