// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when no database is configured,
// so unit tests can run without a running Postgres.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/trip-registry/migrations"
)

// NewPool opens a *pgxpool.Pool connected to TEST_DATABASE_URL.
//
// The test is skipped automatically if TEST_DATABASE_URL is not set.
// The pool is closed automatically when the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB connected to TEST_DATABASE_URL using the pgx
// database/sql driver. Goose needs this rather than a pool.
// The connection is closed automatically when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustMigrate applies every embedded migration to dsn and panics on failure.
// Use this in TestMain functions where no *testing.T is available.
func MustMigrate(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustMigrate: open: " + err.Error())
	}
	defer db.Close()

	if err := db.PingContext(context.Background()); err != nil {
		panic("testutil.MustMigrate: ping: " + err.Error())
	}
	if _, err := migrations.Up(context.Background(), db); err != nil {
		panic("testutil.MustMigrate: " + err.Error())
	}
}

// requireDSN returns TEST_DATABASE_URL, skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
