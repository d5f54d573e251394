package models

// Decision is a row of decisions.
type Decision struct {
	ID               string `db:"id"`
	PatientNhsNumber string `db:"patient_nhs_number"`
	DecisionTypeID   string `db:"decision_type_id"` // FK to decision_types
	DecisionChoice   string `db:"decision_choice"`
	AuditFields
}
