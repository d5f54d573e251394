package dto

import (
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
)

// ConsumerAdoptionRequest defines the data needed to add or modify a consumer adoption.
type ConsumerAdoptionRequest struct {
	ID           string    `json:"id" binding:"omitempty,max=64"`
	ConsumerID   string    `json:"consumerId" binding:"omitempty,max=64"`
	DecisionID   string    `json:"decisionId" binding:"omitempty,max=64"`
	AdoptionDate time.Time `json:"adoptionDate"`
	AuditRequest
}

// ToDomain converts the request into a domain.ConsumerAdoption.
func (r ConsumerAdoptionRequest) ToDomain() domain.ConsumerAdoption {
	return domain.ConsumerAdoption{
		ID:           r.ID,
		ConsumerID:   r.ConsumerID,
		DecisionID:   r.DecisionID,
		AdoptionDate: r.AdoptionDate,
		AuditFields:  r.AuditRequest.toDomain(),
	}
}

// ConsumerAdoptionResponse defines the data returned for a consumer adoption.
type ConsumerAdoptionResponse struct {
	ID           string    `json:"id"`
	ConsumerID   string    `json:"consumerId"`
	DecisionID   string    `json:"decisionId"`
	AdoptionDate time.Time `json:"adoptionDate"`
	AuditResponse
}

// ToConsumerAdoptionResponse converts a domain.ConsumerAdoption to its DTO.
func ToConsumerAdoptionResponse(c *domain.ConsumerAdoption) ConsumerAdoptionResponse {
	return ConsumerAdoptionResponse{
		ID:            c.ID,
		ConsumerID:    c.ConsumerID,
		DecisionID:    c.DecisionID,
		AdoptionDate:  c.AdoptionDate,
		AuditResponse: toAuditResponse(c.AuditFields),
	}
}
