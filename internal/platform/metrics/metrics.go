package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the foundation services.
type Metrics struct {
	// Operations by entity, operation and outcome ("ok" or the error tier)
	Operations *prometheus.CounterVec

	// Operation latency by entity and operation
	OperationLatency *prometheus.HistogramVec

	// Bulk candidates by entity and reconciliation result ("new", "existing")
	BulkCandidates *prometheus.CounterVec

	// Bulk batches committed by entity
	BulkBatches *prometheus.CounterVec
}

// New creates a Metrics instance registered against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pd_foundation_operations_total",
			Help: "Foundation service operations by entity, operation and outcome",
		}, []string{"entity", "operation", "outcome"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pd_foundation_operation_duration_seconds",
			Help:    "Duration of foundation service operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"entity", "operation"}),

		BulkCandidates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pd_bulk_candidates_total",
			Help: "Bulk upsert candidates by reconciliation result",
		}, []string{"entity", "classification"}),

		BulkBatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pd_bulk_batches_total",
			Help: "Bulk upsert batches committed",
		}, []string{"entity"}),
	}
}

// ObserveOperation records one finished operation.
func (m *Metrics) ObserveOperation(entity, operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(entity, operation, outcome).Inc()
	m.OperationLatency.WithLabelValues(entity, operation).Observe(d.Seconds())
}

// AddBulkCandidates records how a committed batch was split.
func (m *Metrics) AddBulkCandidates(entity string, added, modified int) {
	if m == nil {
		return
	}
	m.BulkCandidates.WithLabelValues(entity, "new").Add(float64(added))
	m.BulkCandidates.WithLabelValues(entity, "existing").Add(float64(modified))
	m.BulkBatches.WithLabelValues(entity).Inc()
}
