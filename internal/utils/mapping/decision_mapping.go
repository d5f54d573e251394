package mapping

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/models"
)

// ToModelDecision converts a domain Decision to a model Decision
func ToModelDecision(d domain.Decision) models.Decision {
	return models.Decision{
		ID:               d.ID,
		PatientNhsNumber: d.PatientNhsNumber,
		DecisionTypeID:   d.DecisionTypeID,
		DecisionChoice:   d.DecisionChoice,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDecision converts a model Decision to a domain Decision
func ToDomainDecision(m models.Decision) domain.Decision {
	return domain.Decision{
		ID:               m.ID,
		PatientNhsNumber: m.PatientNhsNumber,
		DecisionTypeID:   m.DecisionTypeID,
		DecisionChoice:   m.DecisionChoice,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
