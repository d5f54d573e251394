// Package memory provides in-process storage gateways with the same error
// contract as the Postgres repositories. Used with STORAGE_DRIVER=memory and
// by service tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
)

// Store keeps records of T keyed by id, in insertion order.
type Store[T any, P domain.EntityPtr[T]] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

var _ portsrepo.Gateway[domain.Decision] = (*Store[domain.Decision, *domain.Decision])(nil)

// NewStore returns an empty store.
func NewStore[T any, P domain.EntityPtr[T]]() *Store[T, P] {
	return &Store[T, P]{records: make(map[string]T)}
}

func identity[T any, P domain.EntityPtr[T]](entity T) string {
	return P(&entity).Identity()
}

func (s *Store[T, P]) SelectByID(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("select %s: %w", id, apperrors.ErrNotFound)
	}
	return &record, nil
}

func (s *Store[T, P]) SelectAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]T, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.records[id])
	}
	return all, nil
}

func (s *Store[T, P]) Insert(_ context.Context, entity T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := identity[T, P](entity)
	if _, exists := s.records[id]; exists {
		return nil, fmt.Errorf("insert %s: %w", id, apperrors.ErrDuplicate)
	}
	s.put(id, entity)
	return &entity, nil
}

// Update rewrites the mutable fields of a record. Creation provenance stays
// as stored, matching the Postgres gateway.
func (s *Store[T, P]) Update(_ context.Context, entity T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := identity[T, P](entity)
	stored, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("update %s: %w", id, apperrors.ErrNotFound)
	}
	updated := keepProvenance[T, P](entity, stored)
	s.records[id] = updated
	return &updated, nil
}

func (s *Store[T, P]) Delete(_ context.Context, entity T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := identity[T, P](entity)
	stored, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("delete %s: %w", id, apperrors.ErrNotFound)
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return &stored, nil
}

// BulkInsert inserts every record or, on the first colliding id, none.
func (s *Store[T, P]) BulkInsert(_ context.Context, entities []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(entities))
	for _, entity := range entities {
		id := identity[T, P](entity)
		_, stored := s.records[id]
		_, repeated := seen[id]
		if stored || repeated {
			return fmt.Errorf("bulk insert %s: %w", id, apperrors.ErrDuplicate)
		}
		seen[id] = struct{}{}
	}
	for _, entity := range entities {
		s.put(identity[T, P](entity), entity)
	}
	return nil
}

// BulkUpdate updates every record or, when any id is unknown, none.
func (s *Store[T, P]) BulkUpdate(_ context.Context, entities []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entity := range entities {
		id := identity[T, P](entity)
		if _, ok := s.records[id]; !ok {
			return fmt.Errorf("bulk update %s: %w", id, apperrors.ErrNotFound)
		}
	}
	for _, entity := range entities {
		id := identity[T, P](entity)
		s.records[id] = keepProvenance[T, P](entity, s.records[id])
	}
	return nil
}

// Len reports how many records are stored.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T, P]) put(id string, entity T) {
	s.records[id] = entity
	s.order = append(s.order, id)
}

func keepProvenance[T any, P domain.EntityPtr[T]](entity, stored T) T {
	audit := P(&entity).Audit()
	original := P(&stored).Audit()
	audit.CreatedBy = original.CreatedBy
	audit.CreatedDate = original.CreatedDate
	P(&entity).SetAudit(audit)
	return entity
}
