package models

import "time"

// ConsumerAdoption is a row of consumer_adoptions.
type ConsumerAdoption struct {
	ID           string    `db:"id"`
	ConsumerID   string    `db:"consumer_id"`
	DecisionID   string    `db:"decision_id"` // FK to decisions
	AdoptionDate time.Time `db:"adoption_date"`
	AuditFields
}
