package memory

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
)

// NewRepositoryProvider returns empty in-memory gateways for every entity.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConsumerAdoptionRepo: NewStore[domain.ConsumerAdoption, *domain.ConsumerAdoption](),
		DecisionTypeRepo:     NewStore[domain.DecisionType, *domain.DecisionType](),
		DecisionRepo:         NewStore[domain.Decision, *domain.Decision](),
	}
}
