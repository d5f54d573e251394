package services

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/core/validation"
)

const EntityDecisionType = "DecisionType"

// NewDecisionTypeService creates the decision type foundation service.
func NewDecisionTypeService(
	repo portsrepo.DecisionTypeRepositoryFacade,
	clock providers.Clock,
	identity providers.IdentityProvider,
	options ...ServiceOption,
) portssvc.DecisionTypeSvcFacade {
	return newFoundationService[domain.DecisionType, *domain.DecisionType](
		EntityDecisionType, repo, clock, identity, decisionTypeRules, options...)
}

func decisionTypeRules(d *domain.DecisionType) []validation.Check {
	return []validation.Check{
		validation.On("Name", validation.RequiredText(d.Name)),
		validation.On("Name", validation.MaxLength(d.Name, domain.DecisionTypeNameMaxLength)),
	}
}
