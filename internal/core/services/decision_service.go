package services

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/core/validation"
)

const EntityDecision = "Decision"

// NewDecisionService creates the decision foundation service. Decisions are
// written on behalf of the caller's full actor profile.
func NewDecisionService(
	repo portsrepo.DecisionRepositoryFacade,
	clock providers.Clock,
	identity providers.IdentityProvider,
	options ...ServiceOption,
) portssvc.DecisionSvcFacade {
	options = append([]ServiceOption{WithActorProfile()}, options...)
	return newFoundationService[domain.Decision, *domain.Decision](
		EntityDecision, repo, clock, identity, decisionRules, options...)
}

func decisionRules(d *domain.Decision) []validation.Check {
	return []validation.Check{
		validation.On("PatientNhsNumber", validation.RequiredText(d.PatientNhsNumber)),
		validation.On("PatientNhsNumber", validation.MaxLength(d.PatientNhsNumber, domain.NhsNumberMaxLength)),
		validation.On("DecisionTypeId", validation.RequiredID(d.DecisionTypeID)),
		validation.On("DecisionChoice", validation.RequiredText(d.DecisionChoice)),
		validation.On("DecisionChoice", validation.MaxLength(d.DecisionChoice, domain.DecisionChoiceMaxLength)),
	}
}
