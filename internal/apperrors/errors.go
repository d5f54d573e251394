package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNullEntity indicates that no entity was supplied to an operation that requires one.
var ErrNullEntity = errors.New("entity is null")

// ErrNullCollection indicates that no collection was supplied to a bulk operation.
var ErrNullCollection = errors.New("collection is null")

// ErrProvenanceMismatch indicates that the creation audit fields of a modify
// request disagree with the persisted record.
var ErrProvenanceMismatch = errors.New("provenance mismatch")

// ErrInvalidReference indicates a broken foreign-key style reference.
var ErrInvalidReference = errors.New("invalid reference")

// ErrLocked indicates a concurrent modification or lock conflict in storage.
var ErrLocked = errors.New("record is locked")

// ErrConnectivity indicates that storage could not be reached.
var ErrConnectivity = errors.New("storage connectivity failure")

// ErrStorage indicates a generic storage write or read failure.
var ErrStorage = errors.New("storage failure")

// Kind names the raw failure carried by a FailureError.
type Kind string

const (
	KindNullEntity         Kind = "NULL_ENTITY"
	KindNullCollection     Kind = "NULL_COLLECTION"
	KindInvalid            Kind = "INVALID"
	KindNotFound           Kind = "NOT_FOUND"
	KindProvenanceMismatch Kind = "PROVENANCE_MISMATCH"
	KindAlreadyExists      Kind = "ALREADY_EXISTS"
	KindInvalidReference   Kind = "INVALID_REFERENCE"
	KindLocked             Kind = "LOCKED"
	KindConnectivity       Kind = "CONNECTIVITY"
	KindStorage            Kind = "STORAGE"
	KindUnknown            Kind = "UNKNOWN"
)

// sentinelFor maps each kind to the sentinel it satisfies under errors.Is.
var sentinelFor = map[Kind]error{
	KindNullEntity:         ErrNullEntity,
	KindNullCollection:     ErrNullCollection,
	KindInvalid:            ErrValidation,
	KindNotFound:           ErrNotFound,
	KindProvenanceMismatch: ErrProvenanceMismatch,
	KindAlreadyExists:      ErrDuplicate,
	KindInvalidReference:   ErrInvalidReference,
	KindLocked:             ErrLocked,
	KindConnectivity:       ErrConnectivity,
	KindStorage:            ErrStorage,
}

// FailureError is the inner error of every ServiceError. It describes what
// went wrong, optionally with a field-level error bag and the raw cause.
type FailureError struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Cause   error
}

func (e *FailureError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " " + formatFields(e.Fields)
}

func (e *FailureError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrNotFound) and friends match on the kind even when
// the raw cause is something else.
func (e *FailureError) Is(target error) bool {
	sentinel, ok := sentinelFor[e.Kind]
	return ok && sentinel == target
}

// NewFailure builds a FailureError.
func NewFailure(kind Kind, message string, cause error) *FailureError {
	return &FailureError{Kind: kind, Message: message, Cause: cause}
}

// NewInvalid builds a FailureError of the given kind carrying a field error bag.
func NewInvalid(kind Kind, message string, fields map[string][]string) *FailureError {
	return &FailureError{Kind: kind, Message: message, Fields: fields}
}

// Tier is the caller-visible error category.
type Tier int

const (
	TierValidation Tier = iota
	TierDependencyValidation
	TierDependency
	TierService
)

func (t Tier) String() string {
	switch t {
	case TierValidation:
		return "validation"
	case TierDependencyValidation:
		return "dependency_validation"
	case TierDependency:
		return "dependency"
	default:
		return "service"
	}
}

// Severity selects the log level a classified failure is reported at.
type Severity int

const (
	SeverityError Severity = iota
	SeverityCritical
)

// ServiceError is what every foundation service returns on failure. Inner is
// the originating FailureError (or raw error for the service tier).
type ServiceError struct {
	Tier     Tier
	Severity Severity
	Entity   string
	Message  string
	Inner    error
}

func (e *ServiceError) Error() string {
	if e.Inner == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Inner)
}

func (e *ServiceError) Unwrap() error { return e.Inner }

// Failure returns the inner FailureError, if there is one.
func (e *ServiceError) Failure() (*FailureError, bool) {
	var failure *FailureError
	if errors.As(e.Inner, &failure) {
		return failure, true
	}
	return nil, false
}

func formatFields(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: [%s]", k, strings.Join(fields[k], "; ")))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
