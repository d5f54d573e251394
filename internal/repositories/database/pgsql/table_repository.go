package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/models"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var auditColumns = []string{"created_by", "created_date", "updated_by", "updated_date"}

// tableSpec describes how one entity maps onto its table. columns lists the
// entity columns with the primary key first; audit columns are appended.
type tableSpec[T any] struct {
	table   string
	columns []string
	// values returns the entity column values in columns order, plus audit fields.
	values func(T) ([]any, models.AuditFields)
	// scan reads a row selected with every column, audit columns last.
	scan func(pgx.Row) (T, error)
	id   func(T) string
}

// tableRepository implements the storage gateway for one table.
type tableRepository[T any] struct {
	BaseRepository
	spec tableSpec[T]

	selectByIDQuery string
	selectAllQuery  string
	insertQuery     string
	updateQuery     string
	deleteQuery     string
	lockQuery       string
	lockManyQuery   string
}

func newTableRepository[T any](pool *pgxpool.Pool, spec tableSpec[T]) *tableRepository[T] {
	all := append(append([]string{}, spec.columns...), auditColumns...)
	selectList := strings.Join(all, ", ")
	key := spec.columns[0]

	placeholders := make([]string, len(all))
	for i := range all {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// created_by and created_date are never rewritten.
	mutable := append(append([]string{}, spec.columns[1:]...), "updated_by", "updated_date")
	assignments := make([]string, len(mutable))
	for i, col := range mutable {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}

	return &tableRepository[T]{
		BaseRepository: BaseRepository{Pool: pool},
		spec:           spec,
		selectByIDQuery: fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1;`,
			selectList, spec.table, key),
		selectAllQuery: fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_date, %s;`,
			selectList, spec.table, key),
		insertQuery: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s;`,
			spec.table, selectList, strings.Join(placeholders, ", "), selectList),
		updateQuery: fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s;`,
			spec.table, strings.Join(assignments, ", "), key, selectList),
		deleteQuery: fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s;`,
			spec.table, key, selectList),
		lockQuery: fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE NOWAIT;`,
			key, spec.table, key),
		lockManyQuery: fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1) FOR UPDATE NOWAIT;`,
			key, spec.table, key),
	}
}

func (r *tableRepository[T]) insertArgs(entity T) []any {
	values, audit := r.spec.values(entity)
	return append(values, audit.CreatedBy, audit.CreatedDate, audit.UpdatedBy, audit.UpdatedDate)
}

func (r *tableRepository[T]) updateArgs(entity T) []any {
	values, audit := r.spec.values(entity)
	return append(values, audit.UpdatedBy, audit.UpdatedDate)
}

// SelectByID retrieves a record by its primary key.
func (r *tableRepository[T]) SelectByID(ctx context.Context, id string) (*T, error) {
	entity, err := r.spec.scan(r.Pool.QueryRow(ctx, r.selectByIDQuery, id))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to select %s %s", r.spec.table, id))
	}
	return &entity, nil
}

// SelectAll retrieves every record, oldest first.
func (r *tableRepository[T]) SelectAll(ctx context.Context) ([]T, error) {
	rows, err := r.Pool.Query(ctx, r.selectAllQuery)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to query %s", r.spec.table))
	}
	defer rows.Close()

	entities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return r.spec.scan(row)
	})
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to scan %s", r.spec.table))
	}
	return entities, nil
}

// Insert persists a new record.
func (r *tableRepository[T]) Insert(ctx context.Context, entity T) (*T, error) {
	inserted, err := r.spec.scan(r.Pool.QueryRow(ctx, r.insertQuery, r.insertArgs(entity)...))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to insert %s %s", r.spec.table, r.spec.id(entity)))
	}
	return &inserted, nil
}

// Update locks the row without waiting and rewrites its mutable columns.
// A row held by another transaction yields apperrors.ErrLocked.
func (r *tableRepository[T]) Update(ctx context.Context, entity T) (_ *T, err error) {
	id := r.spec.id(entity)
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var lockedID string
	if err = tx.QueryRow(ctx, r.lockQuery, id).Scan(&lockedID); err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to lock %s %s", r.spec.table, id))
	}

	updated, err := r.spec.scan(tx.QueryRow(ctx, r.updateQuery, r.updateArgs(entity)...))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to update %s %s", r.spec.table, id))
	}

	if err = r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record and returns the deleted row.
func (r *tableRepository[T]) Delete(ctx context.Context, entity T) (*T, error) {
	id := r.spec.id(entity)
	deleted, err := r.spec.scan(r.Pool.QueryRow(ctx, r.deleteQuery, id))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to delete %s %s", r.spec.table, id))
	}
	return &deleted, nil
}

// BulkInsert copies every record in one transaction.
func (r *tableRepository[T]) BulkInsert(ctx context.Context, entities []T) (err error) {
	if len(entities) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	columns := append(append([]string{}, r.spec.columns...), auditColumns...)
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{r.spec.table},
		columns,
		pgx.CopyFromSlice(len(entities), func(i int) ([]any, error) {
			return r.insertArgs(entities[i]), nil
		}),
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to bulk insert %d %s", len(entities), r.spec.table))
	}

	return r.Commit(ctx, tx)
}

// BulkUpdate locks every target row, then sends all updates as one batch in
// the same transaction. Any missing row fails the whole call.
func (r *tableRepository[T]) BulkUpdate(ctx context.Context, entities []T) (err error) {
	if len(entities) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	idSet := mapset.NewThreadUnsafeSetWithSize[string](len(entities))
	for _, entity := range entities {
		idSet.Add(r.spec.id(entity))
	}
	ids := idSet.ToSlice()
	rows, err := tx.Query(ctx, r.lockManyQuery, ids)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to lock %s", r.spec.table))
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to lock %s", r.spec.table))
	}
	if len(locked) < len(ids) {
		return fmt.Errorf("failed to bulk update %s: %d of %d rows missing: %w",
			r.spec.table, len(ids)-len(locked), len(ids), apperrors.ErrNotFound)
	}

	batch := &pgx.Batch{}
	for _, entity := range entities {
		batch.Queue(r.updateQuery, r.updateArgs(entity)...)
	}
	results := tx.SendBatch(ctx, batch)
	for range entities {
		if _, err = results.Exec(); err != nil {
			_ = results.Close()
			return mapPgError(err, fmt.Sprintf("failed to bulk update %s", r.spec.table))
		}
	}
	if err = results.Close(); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to bulk update %s", r.spec.table))
	}

	return r.Commit(ctx, tx)
}
