// Package repo contains all database access logic for the trip registration API.
// Each resource has its own file with an interface and a Postgres implementation.
// Existence and capacity rules that need the database live here; input
// validation does not.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgxpool.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// acquirer is implemented by *pgxpool.Pool.
type acquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// withConn runs fn against a single connection for the whole operation.
// When d is a pool, a connection is acquired for the call and released on every
// exit path; any other db (a test transaction, a bare conn) is used as is.
func withConn(ctx context.Context, d db, fn func(q db) error) error {
	p, ok := d.(acquirer)
	if !ok {
		return fn(d)
	}
	conn, err := p.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()
	return fn(conn)
}

// inTx runs fn inside a transaction on q. The transaction is committed only
// when fn returns nil; otherwise it is rolled back.
func inTx(ctx context.Context, q db, fn func(tx pgx.Tx) error) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// Rollback after a successful Commit is a no-op returning ErrTxClosed.
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// uniqueViolation is the SQLSTATE Postgres reports for a duplicate key.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
