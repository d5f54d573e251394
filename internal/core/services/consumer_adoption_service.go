package services

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/core/validation"
)

// EntityConsumerAdoption names consumer adoptions in errors, logs and metrics.
const EntityConsumerAdoption = "ConsumerAdoption"

// NewConsumerAdoptionService creates the consumer adoption foundation service.
func NewConsumerAdoptionService(
	repo portsrepo.ConsumerAdoptionRepositoryFacade,
	clock providers.Clock,
	identity providers.IdentityProvider,
	options ...ServiceOption,
) portssvc.ConsumerAdoptionSvcFacade {
	return newFoundationService[domain.ConsumerAdoption, *domain.ConsumerAdoption](
		EntityConsumerAdoption, repo, clock, identity, consumerAdoptionRules, options...)
}

func consumerAdoptionRules(c *domain.ConsumerAdoption) []validation.Check {
	return []validation.Check{
		validation.On("ConsumerId", validation.RequiredID(c.ConsumerID)),
		validation.On("DecisionId", validation.RequiredID(c.DecisionID)),
		validation.On("AdoptionDate", validation.RequiredDate(c.AdoptionDate)),
	}
}
