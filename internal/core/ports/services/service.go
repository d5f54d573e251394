package services

import (
	"context"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	ConsumerAdoption ConsumerAdoptionSvcFacade
	DecisionType     DecisionTypeSvcFacade
	Decision         DecisionSvcFacade
}

// ReaderSvc defines read operations. Neither method mutates stored state.
type ReaderSvc[T any] interface {
	// RetrieveByID returns the record with id.
	RetrieveByID(ctx context.Context, id string) (*T, error)

	// RetrieveAll returns every stored record.
	RetrieveAll(ctx context.Context) ([]T, error)
}

// WriterSvc defines single-record writes.
type WriterSvc[T any] interface {
	// Add stamps, validates and inserts a new record.
	Add(ctx context.Context, entity *T) (*T, error)

	// Modify stamps, validates, checks provenance and updates a record.
	Modify(ctx context.Context, entity *T) (*T, error)

	// RemoveByID deletes the record with id and returns it.
	RemoveByID(ctx context.Context, id string) (*T, error)
}

// BulkWriterSvc defines the reconcile-and-batch upsert.
type BulkWriterSvc[T any] interface {
	// BulkAddOrModify upserts entities using the configured batch size.
	BulkAddOrModify(ctx context.Context, entities []T) error

	// BulkAddOrModifyBatch upserts entities batchSize at a time.
	BulkAddOrModifyBatch(ctx context.Context, entities []T, batchSize int) error

	// DefaultBatchSize is the batch size BulkAddOrModify uses.
	DefaultBatchSize() int
}

// FoundationService is the uniform surface every entity service exposes.
type FoundationService[T any] interface {
	ReaderSvc[T]
	WriterSvc[T]
	BulkWriterSvc[T]
}

// ConsumerAdoptionSvcFacade manages consumer adoptions.
type ConsumerAdoptionSvcFacade interface {
	FoundationService[domain.ConsumerAdoption]
}

// DecisionTypeSvcFacade manages decision types.
type DecisionTypeSvcFacade interface {
	FoundationService[domain.DecisionType]
}

// DecisionSvcFacade manages patient decisions.
type DecisionSvcFacade interface {
	FoundationService[domain.Decision]
}
