package mapping

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/models"
)

// ToModelConsumerAdoption converts a domain ConsumerAdoption to a model ConsumerAdoption
func ToModelConsumerAdoption(d domain.ConsumerAdoption) models.ConsumerAdoption {
	return models.ConsumerAdoption{
		ID:           d.ID,
		ConsumerID:   d.ConsumerID,
		DecisionID:   d.DecisionID,
		AdoptionDate: d.AdoptionDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConsumerAdoption converts a model ConsumerAdoption to a domain ConsumerAdoption
func ToDomainConsumerAdoption(m models.ConsumerAdoption) domain.ConsumerAdoption {
	return domain.ConsumerAdoption{
		ID:           m.ID,
		ConsumerID:   m.ConsumerID,
		DecisionID:   m.DecisionID,
		AdoptionDate: m.AdoptionDate.UTC(),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
