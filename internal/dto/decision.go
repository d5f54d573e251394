package dto

import "github.com/SscSPs/patient_decisions_app/internal/core/domain"

// DecisionRequest defines the data needed to add or modify a patient decision.
// Non-empty NHS numbers must pass the modulus 11 check.
type DecisionRequest struct {
	ID               string `json:"id" binding:"omitempty,max=64"`
	PatientNhsNumber string `json:"patientNhsNumber" binding:"omitempty,nhsnumber"`
	DecisionTypeID   string `json:"decisionTypeId" binding:"omitempty,max=64"`
	DecisionChoice   string `json:"decisionChoice"`
	AuditRequest
}

// ToDomain converts the request into a domain.Decision.
func (r DecisionRequest) ToDomain() domain.Decision {
	return domain.Decision{
		ID:               r.ID,
		PatientNhsNumber: r.PatientNhsNumber,
		DecisionTypeID:   r.DecisionTypeID,
		DecisionChoice:   r.DecisionChoice,
		AuditFields:      r.AuditRequest.toDomain(),
	}
}

// DecisionResponse defines the data returned for a patient decision.
type DecisionResponse struct {
	ID               string `json:"id"`
	PatientNhsNumber string `json:"patientNhsNumber"`
	DecisionTypeID   string `json:"decisionTypeId"`
	DecisionChoice   string `json:"decisionChoice"`
	AuditResponse
}

// ToDecisionResponse converts a domain.Decision to its DTO.
func ToDecisionResponse(d *domain.Decision) DecisionResponse {
	return DecisionResponse{
		ID:               d.ID,
		PatientNhsNumber: d.PatientNhsNumber,
		DecisionTypeID:   d.DecisionTypeID,
		DecisionChoice:   d.DecisionChoice,
		AuditResponse:    toAuditResponse(d.AuditFields),
	}
}
