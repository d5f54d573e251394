package pgsql

import (
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConsumerAdoptionRepo: newPgxConsumerAdoptionRepository(dbPool),
		DecisionTypeRepo:     newPgxDecisionTypeRepository(dbPool),
		DecisionRepo:         newPgxDecisionRepository(dbPool),
	}
}
