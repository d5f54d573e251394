package mapping

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/models"
)

// ToModelDecisionType converts a domain DecisionType to a model DecisionType
func ToModelDecisionType(d domain.DecisionType) models.DecisionType {
	return models.DecisionType{
		ID:          d.ID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDecisionType converts a model DecisionType to a domain DecisionType
func ToDomainDecisionType(m models.DecisionType) domain.DecisionType {
	return domain.DecisionType{
		ID:          m.ID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
