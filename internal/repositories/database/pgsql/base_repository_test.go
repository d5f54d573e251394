package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperrors.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, apperrors.ErrInvalidReference},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, apperrors.ErrLocked},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, apperrors.ErrLocked},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, apperrors.ErrLocked},
		{"connection failure", &pgconn.PgError{Code: "08006"}, apperrors.ErrConnectivity},
		{"check violation", &pgconn.PgError{Code: "23514"}, apperrors.ErrStorage},
		{"deadline", context.DeadlineExceeded, apperrors.ErrConnectivity},
		{"other", errors.New("boom"), apperrors.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapPgError(tt.err, "failed to insert decisions d-1")

			assert.ErrorIs(t, mapped, tt.want)
			assert.ErrorIs(t, mapped, tt.err, "driver error stays in the chain")
			assert.Contains(t, mapped.Error(), "failed to insert decisions d-1")
		})
	}
}

func TestMapPgError_Nil(t *testing.T) {
	assert.NoError(t, mapPgError(nil, "unused"))
}

func TestMapPgError_WrappedPgError(t *testing.T) {
	wrapped := fmt.Errorf("batch: %w", &pgconn.PgError{Code: "23505", ConstraintName: "decisions_pkey"})

	assert.ErrorIs(t, mapPgError(wrapped, "failed to bulk insert"), apperrors.ErrDuplicate)
	assert.Equal(t, apperrors.KindAlreadyExists, apperrors.KindOf(mapPgError(wrapped, "failed to bulk insert")))
}

func TestNewTableRepository_Queries(t *testing.T) {
	repo := newTableRepository[struct{}](nil, tableSpec[struct{}]{
		table:   "decision_types",
		columns: []string{"id", "name"},
	})

	assert.Equal(t,
		"SELECT id, name, created_by, created_date, updated_by, updated_date FROM decision_types WHERE id = $1;",
		repo.selectByIDQuery)
	assert.Equal(t,
		"UPDATE decision_types SET name = $2, updated_by = $3, updated_date = $4 WHERE id = $1 RETURNING id, name, created_by, created_date, updated_by, updated_date;",
		repo.updateQuery)
	assert.Equal(t,
		"INSERT INTO decision_types (id, name, created_by, created_date, updated_by, updated_date) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, name, created_by, created_date, updated_by, updated_date;",
		repo.insertQuery)
	assert.Equal(t,
		"SELECT id FROM decision_types WHERE id = ANY($1) FOR UPDATE NOWAIT;",
		repo.lockManyQuery)
}
