package pgsql

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	"github.com/SscSPs/patient_decisions_app/internal/models"
	"github.com/SscSPs/patient_decisions_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDecisionRepository struct {
	*tableRepository[domain.Decision]
}

// newPgxDecisionRepository creates a new repository for patient decisions.
func newPgxDecisionRepository(pool *pgxpool.Pool) portsrepo.DecisionRepositoryFacade {
	return &PgxDecisionRepository{
		tableRepository: newTableRepository(pool, tableSpec[domain.Decision]{
			table:   "decisions",
			columns: []string{"id", "patient_nhs_number", "decision_type_id", "decision_choice"},
			values: func(d domain.Decision) ([]any, models.AuditFields) {
				m := mapping.ToModelDecision(d)
				return []any{m.ID, m.PatientNhsNumber, m.DecisionTypeID, m.DecisionChoice}, m.AuditFields
			},
			scan: scanDecision,
			id:   func(d domain.Decision) string { return d.ID },
		}),
	}
}

var _ portsrepo.DecisionRepositoryFacade = (*PgxDecisionRepository)(nil)

func scanDecision(row pgx.Row) (domain.Decision, error) {
	var m models.Decision
	err := row.Scan(
		&m.ID,
		&m.PatientNhsNumber,
		&m.DecisionTypeID,
		&m.DecisionChoice,
		&m.CreatedBy,
		&m.CreatedDate,
		&m.UpdatedBy,
		&m.UpdatedDate,
	)
	if err != nil {
		return domain.Decision{}, err
	}
	return mapping.ToDomainDecision(m), nil
}
