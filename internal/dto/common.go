package dto

import (
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
)

// AuditRequest carries provenance. Leave it empty on add to have the server
// stamp it; echo the stored CreatedBy/CreatedDate back on modify.
type AuditRequest struct {
	CreatedBy   string    `json:"createdBy,omitempty"`
	CreatedDate time.Time `json:"createdDate,omitempty"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
	UpdatedDate time.Time `json:"updatedDate,omitempty"`
}

func (a AuditRequest) toDomain() domain.AuditFields {
	return domain.AuditFields{
		CreatedBy:   a.CreatedBy,
		CreatedDate: a.CreatedDate,
		UpdatedBy:   a.UpdatedBy,
		UpdatedDate: a.UpdatedDate,
	}
}

// AuditResponse is the provenance returned with every record.
type AuditResponse struct {
	CreatedBy   string    `json:"createdBy"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedBy   string    `json:"updatedBy"`
	UpdatedDate time.Time `json:"updatedDate"`
}

func toAuditResponse(a domain.AuditFields) AuditResponse {
	return AuditResponse{
		CreatedBy:   a.CreatedBy,
		CreatedDate: a.CreatedDate,
		UpdatedBy:   a.UpdatedBy,
		UpdatedDate: a.UpdatedDate,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Reason  string              `json:"reason,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// BulkResponse acknowledges a bulk upsert.
type BulkResponse struct {
	Received  int `json:"received"`
	BatchSize int `json:"batchSize"`
}
