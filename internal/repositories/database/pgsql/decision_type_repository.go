package pgsql

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	"github.com/SscSPs/patient_decisions_app/internal/models"
	"github.com/SscSPs/patient_decisions_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDecisionTypeRepository struct {
	*tableRepository[domain.DecisionType]
}

// newPgxDecisionTypeRepository creates a new repository for decision type data.
func newPgxDecisionTypeRepository(pool *pgxpool.Pool) portsrepo.DecisionTypeRepositoryFacade {
	return &PgxDecisionTypeRepository{
		tableRepository: newTableRepository(pool, tableSpec[domain.DecisionType]{
			table:   "decision_types",
			columns: []string{"id", "name"},
			values: func(d domain.DecisionType) ([]any, models.AuditFields) {
				m := mapping.ToModelDecisionType(d)
				return []any{m.ID, m.Name}, m.AuditFields
			},
			scan: scanDecisionType,
			id:   func(d domain.DecisionType) string { return d.ID },
		}),
	}
}

var _ portsrepo.DecisionTypeRepositoryFacade = (*PgxDecisionTypeRepository)(nil)

func scanDecisionType(row pgx.Row) (domain.DecisionType, error) {
	var m models.DecisionType
	if err := row.Scan(&m.ID, &m.Name, &m.CreatedBy, &m.CreatedDate, &m.UpdatedBy, &m.UpdatedDate); err != nil {
		return domain.DecisionType{}, err
	}
	return mapping.ToDomainDecisionType(m), nil
}
