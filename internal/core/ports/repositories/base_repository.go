package repositories

import (
	"context"
)

// Reader defines read operations shared by every entity store.
type Reader[T any] interface {
	// SelectByID returns the record with id, or apperrors.ErrNotFound.
	SelectByID(ctx context.Context, id string) (*T, error)

	// SelectAll returns every stored record.
	SelectAll(ctx context.Context) ([]T, error)
}

// Writer defines single-record write operations.
type Writer[T any] interface {
	// Insert persists a new record. A colliding id yields apperrors.ErrDuplicate.
	Insert(ctx context.Context, entity T) (*T, error)

	// Update replaces an existing record.
	Update(ctx context.Context, entity T) (*T, error)

	// Delete removes the record and returns what was removed.
	Delete(ctx context.Context, entity T) (*T, error)
}

// BulkWriter defines the set-based writes used by bulk upserts.
type BulkWriter[T any] interface {
	// BulkInsert persists all records or none of them.
	BulkInsert(ctx context.Context, entities []T) error

	// BulkUpdate updates all records or none of them.
	BulkUpdate(ctx context.Context, entities []T) error
}

// Gateway combines all storage operations a foundation service needs.
type Gateway[T any] interface {
	Reader[T]
	Writer[T]
	BulkWriter[T]
}
