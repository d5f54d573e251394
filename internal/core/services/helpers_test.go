package services_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock Gateway ---
type MockGateway[T any] struct {
	mock.Mock
}

func (m *MockGateway[T]) SelectByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockGateway[T]) SelectAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockGateway[T]) Insert(ctx context.Context, entity T) (*T, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockGateway[T]) Update(ctx context.Context, entity T) (*T, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockGateway[T]) Delete(ctx context.Context, entity T) (*T, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockGateway[T]) BulkInsert(ctx context.Context, entities []T) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockGateway[T]) BulkUpdate(ctx context.Context, entities []T) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.DecisionTypeRepositoryFacade = (*MockGateway[domain.DecisionType])(nil)

// recordingHandler keeps every log record so tests can count failures.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

// atOrAbove returns the records logged at level or higher.
func (h *recordingHandler) atOrAbove(level slog.Level) []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Record
	for _, r := range h.records {
		if r.Level >= level {
			out = append(out, r)
		}
	}
	return out
}

func attrValue(r slog.Record, key string) (string, bool) {
	var (
		value string
		found bool
	)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value, found = a.Value.String(), true
			return false
		}
		return true
	})
	return value, found
}
