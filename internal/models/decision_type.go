package models

// DecisionType is a row of decision_types.
type DecisionType struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	AuditFields
}
