package services

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultBatchSize is used when no batch size is configured.
const DefaultBatchSize = 10000

// BatchCount returns ceil(total/batchSize) without overflowing for large
// batch sizes. A batch size below one counts as one.
func BatchCount(total, batchSize int) int {
	if batchSize <= 0 {
		batchSize = 1
	}
	if total <= 0 {
		return 0
	}
	return 1 + (total-1)/batchSize
}

// Partition splits items into consecutive batches of at most batchSize,
// keeping input order.
func Partition[T any](items []T, batchSize int) [][]T {
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := make([][]T, 0, BatchCount(len(items), batchSize))
	for start, end := 0, 0; start < len(items); start = end {
		end = start + min(batchSize, len(items)-start)
		batches = append(batches, items[start:end:end])
	}
	return batches
}

// Reconciled is one batch split against a storage snapshot.
type Reconciled[T any] struct {
	New      []T
	Existing []T
	// Stored holds the persisted record for every id in Existing.
	Stored map[string]T
}

// Reconcile classifies every candidate of batch as new or existing by
// intersecting candidate ids with the ids in stored. Both subsets keep the
// order of batch.
func Reconcile[T any, P domain.EntityPtr[T]](batch []T, stored []T) Reconciled[T] {
	storedIDs := mapset.NewThreadUnsafeSetWithSize[string](len(stored))
	storedByID := make(map[string]T, len(stored))
	for i := range stored {
		id := P(&stored[i]).Identity()
		storedIDs.Add(id)
		storedByID[id] = stored[i]
	}

	candidateIDs := mapset.NewThreadUnsafeSetWithSize[string](len(batch))
	for i := range batch {
		candidateIDs.Add(P(&batch[i]).Identity())
	}
	matched := candidateIDs.Intersect(storedIDs)

	result := Reconciled[T]{
		New:      make([]T, 0, len(batch)-matched.Cardinality()),
		Existing: make([]T, 0, matched.Cardinality()),
		Stored:   make(map[string]T, matched.Cardinality()),
	}
	for i := range batch {
		id := P(&batch[i]).Identity()
		if matched.Contains(id) {
			result.Existing = append(result.Existing, batch[i])
			result.Stored[id] = storedByID[id]
			continue
		}
		result.New = append(result.New, batch[i])
	}
	return result
}
