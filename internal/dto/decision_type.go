package dto

import "github.com/SscSPs/patient_decisions_app/internal/core/domain"

// DecisionTypeRequest defines the data needed to add or modify a decision type.
type DecisionTypeRequest struct {
	ID   string `json:"id" binding:"omitempty,max=64"`
	Name string `json:"name"`
	AuditRequest
}

// ToDomain converts the request into a domain.DecisionType.
func (r DecisionTypeRequest) ToDomain() domain.DecisionType {
	return domain.DecisionType{
		ID:          r.ID,
		Name:        r.Name,
		AuditFields: r.AuditRequest.toDomain(),
	}
}

// DecisionTypeResponse defines the data returned for a decision type.
type DecisionTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	AuditResponse
}

// ToDecisionTypeResponse converts a domain.DecisionType to its DTO.
func ToDecisionTypeResponse(d *domain.DecisionType) DecisionTypeResponse {
	return DecisionTypeResponse{
		ID:            d.ID,
		Name:          d.Name,
		AuditResponse: toAuditResponse(d.AuditFields),
	}
}
