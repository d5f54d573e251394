package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes surfaced as typed failures.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeLockNotAvailable     = "55P03"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, mapPgError(err, "failed to begin transaction")
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return mapPgError(err, "failed to rollback transaction")
	}
	return nil
}

// mapPgError wraps a driver error with the apperrors sentinel its cause
// corresponds to, keeping the original error in the chain.
func mapPgError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", msg, sentinelFor(err), err)
}

func sentinelFor(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation:
			return apperrors.ErrDuplicate
		case pgErr.Code == codeForeignKeyViolation:
			return apperrors.ErrInvalidReference
		case pgErr.Code == codeLockNotAvailable,
			pgErr.Code == codeSerializationFailure,
			pgErr.Code == codeDeadlockDetected:
			return apperrors.ErrLocked
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == "08":
			return apperrors.ErrConnectivity
		default:
			return apperrors.ErrStorage
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return apperrors.ErrConnectivity
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperrors.ErrConnectivity
	}
	return apperrors.ErrStorage
}
