package domain

import "time"

// ConsumerAdoption records that a consumer system has adopted (acted on) a
// patient's decision.
type ConsumerAdoption struct {
	ID           string    `json:"id"`
	ConsumerID   string    `json:"consumerId"`
	DecisionID   string    `json:"decisionId"` // FK -> decisions.id
	AdoptionDate time.Time `json:"adoptionDate"`
	AuditFields
}

func (c ConsumerAdoption) Identity() string { return c.ID }
