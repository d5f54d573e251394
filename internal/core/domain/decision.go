package domain

const (
	// NhsNumberMaxLength bounds Decision.PatientNhsNumber.
	NhsNumberMaxLength = 10
	// DecisionChoiceMaxLength bounds Decision.DecisionChoice.
	DecisionChoiceMaxLength = 255
)

// Decision is a patient's choice for one decision type.
type Decision struct {
	ID               string `json:"id"`
	PatientNhsNumber string `json:"patientNhsNumber"`
	DecisionTypeID   string `json:"decisionTypeId"` // FK -> decision_types.id
	DecisionChoice   string `json:"decisionChoice"`
	AuditFields
}

func (d Decision) Identity() string { return d.ID }
