package mapping

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedBy:   d.CreatedBy,
		CreatedDate: d.CreatedDate,
		UpdatedBy:   d.UpdatedBy,
		UpdatedDate: d.UpdatedDate,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields.
// Timestamps come back from Postgres in the session zone; they are normalized to UTC.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedBy:   m.CreatedBy,
		CreatedDate: m.CreatedDate.UTC(),
		UpdatedBy:   m.UpdatedBy,
		UpdatedDate: m.UpdatedDate.UTC(),
	}
}
