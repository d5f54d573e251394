package services_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/services"
	"github.com/SscSPs/patient_decisions_app/internal/platform/clock"
	"github.com/SscSPs/patient_decisions_app/internal/platform/identity"
	"github.com/SscSPs/patient_decisions_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records how the bulk pipeline drives storage.
type countingStore struct {
	*memory.Store[domain.DecisionType, *domain.DecisionType]
	selectAllCalls int
	inserted       []int
	updated        []int
}

func newCountingStore() *countingStore {
	return &countingStore{Store: memory.NewStore[domain.DecisionType, *domain.DecisionType]()}
}

func (s *countingStore) SelectAll(ctx context.Context) ([]domain.DecisionType, error) {
	s.selectAllCalls++
	return s.Store.SelectAll(ctx)
}

func (s *countingStore) BulkInsert(ctx context.Context, entities []domain.DecisionType) error {
	s.inserted = append(s.inserted, len(entities))
	return s.Store.BulkInsert(ctx, entities)
}

func (s *countingStore) BulkUpdate(ctx context.Context, entities []domain.DecisionType) error {
	s.updated = append(s.updated, len(entities))
	return s.Store.BulkUpdate(ctx, entities)
}

func seed(t *testing.T, store *countingStore, records []domain.DecisionType) {
	t.Helper()
	require.NoError(t, store.Store.BulkInsert(context.Background(), records))
}

func TestBulkAddOrModifyBatch_MaxIntBatchSize(t *testing.T) {
	store := newCountingStore()
	service := services.NewDecisionTypeService(store, clock.Fixed(testNow), identity.NewStatic(testActor))

	require.NotPanics(t, func() {
		require.NoError(t, service.BulkAddOrModifyBatch(context.Background(), decisionTypes(2), math.MaxInt))
	})

	assert.Equal(t, 1, store.selectAllCalls)
	assert.Equal(t, []int{2}, store.inserted)
	assert.Equal(t, 2, store.Len())
}

func TestBulkAddOrModify_TwoBatchesAgainstExistingRecords(t *testing.T) {
	store := newCountingStore()
	service := services.NewDecisionTypeService(store, clock.Fixed(testNow), identity.NewStatic(testActor))

	candidates := decisionTypes(15000)
	var existing []domain.DecisionType
	for i := 0; i < len(candidates); i += 3 {
		candidates[i].AuditFields = domain.AuditFields{
			CreatedBy:   "seed",
			CreatedDate: testNow.Add(-time.Hour),
			UpdatedBy:   "seed",
			UpdatedDate: testNow.Add(-time.Hour),
		}
		existing = append(existing, candidates[i])
	}
	require.Len(t, existing, 5000)
	seed(t, store, existing)

	err := service.BulkAddOrModifyBatch(context.Background(), candidates, 10000)

	require.NoError(t, err)
	assert.Equal(t, 2, store.selectAllCalls, "one storage snapshot per batch")
	assert.Equal(t, []int{6666, 3334}, store.inserted)
	assert.Equal(t, []int{3334, 1666}, store.updated)
	assert.Equal(t, 15000, sum(store.inserted)+sum(store.updated))
	assert.Equal(t, 15000, store.Len())

	updated, err := store.SelectByID(context.Background(), "dt-00003")
	require.NoError(t, err)
	assert.Equal(t, "seed", updated.CreatedBy)
	assert.Equal(t, testActor, updated.UpdatedBy)
	assert.Equal(t, testNow, updated.UpdatedDate)

	added, err := store.SelectByID(context.Background(), "dt-00001")
	require.NoError(t, err)
	assert.Equal(t, testActor, added.CreatedBy)
	assert.Equal(t, testNow, added.CreatedDate)
}

func TestBulkAddOrModify_EarlierBatchesStayCommitted(t *testing.T) {
	store := newCountingStore()
	service := services.NewDecisionTypeService(store, clock.Fixed(testNow), identity.NewStatic(testActor))

	candidates := decisionTypes(4)
	candidates[2].Name = ""

	err := service.BulkAddOrModifyBatch(context.Background(), candidates, 2)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "batch 2 of 2"), err.Error())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []int{2}, store.inserted)
}

func TestBulkAddOrModify_DuplicateWithinBatch(t *testing.T) {
	store := newCountingStore()
	service := services.NewDecisionTypeService(store, clock.Fixed(testNow), identity.NewStatic(testActor))

	candidates := []domain.DecisionType{
		{ID: "dt-1", Name: "first"},
		{ID: "dt-1", Name: "second"},
	}

	err := service.BulkAddOrModify(context.Background(), candidates)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Equal(t, 0, store.Len())
}

func TestRetrieve_DoesNotMutateStorage(t *testing.T) {
	store := newCountingStore()
	service := services.NewDecisionTypeService(store, clock.Fixed(testNow), identity.NewStatic(testActor))
	ctx := context.Background()

	_, err := service.Add(ctx, &domain.DecisionType{ID: "dt-1", Name: "Research opt-out"})
	require.NoError(t, err)
	before, err := store.SelectAll(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = service.RetrieveByID(ctx, "dt-1")
		require.NoError(t, err)
		_, err = service.RetrieveAll(ctx)
		require.NoError(t, err)
	}

	after, err := store.SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func ExampleBatchCount() {
	fmt.Println(services.BatchCount(15000, 10000))
	// Output: 2
}
