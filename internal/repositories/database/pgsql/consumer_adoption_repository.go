package pgsql

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	"github.com/SscSPs/patient_decisions_app/internal/models"
	"github.com/SscSPs/patient_decisions_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConsumerAdoptionRepository struct {
	*tableRepository[domain.ConsumerAdoption]
}

// newPgxConsumerAdoptionRepository creates a new repository for consumer adoption data.
func newPgxConsumerAdoptionRepository(pool *pgxpool.Pool) portsrepo.ConsumerAdoptionRepositoryFacade {
	return &PgxConsumerAdoptionRepository{
		tableRepository: newTableRepository(pool, tableSpec[domain.ConsumerAdoption]{
			table:   "consumer_adoptions",
			columns: []string{"id", "consumer_id", "decision_id", "adoption_date"},
			values: func(d domain.ConsumerAdoption) ([]any, models.AuditFields) {
				m := mapping.ToModelConsumerAdoption(d)
				return []any{m.ID, m.ConsumerID, m.DecisionID, m.AdoptionDate}, m.AuditFields
			},
			scan: scanConsumerAdoption,
			id:   func(d domain.ConsumerAdoption) string { return d.ID },
		}),
	}
}

// Ensure implementation matches interface
var _ portsrepo.ConsumerAdoptionRepositoryFacade = (*PgxConsumerAdoptionRepository)(nil)

func scanConsumerAdoption(row pgx.Row) (domain.ConsumerAdoption, error) {
	var m models.ConsumerAdoption
	err := row.Scan(
		&m.ID,
		&m.ConsumerID,
		&m.DecisionID,
		&m.AdoptionDate,
		&m.CreatedBy,
		&m.CreatedDate,
		&m.UpdatedBy,
		&m.UpdatedDate,
	)
	if err != nil {
		return domain.ConsumerAdoption{}, err
	}
	return mapping.ToDomainConsumerAdoption(m), nil
}
