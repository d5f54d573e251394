package domain

import "time"

// AuditFields holds the provenance stamped onto every persisted record.
// CreatedBy/CreatedDate are fixed at insert; UpdatedBy/UpdatedDate move on every modify.
type AuditFields struct {
	CreatedBy   string    `json:"createdBy"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedBy   string    `json:"updatedBy"`
	UpdatedDate time.Time `json:"updatedDate"`
}

// Audit returns a copy of the audit fields. Promoted onto every entity.
func (a AuditFields) Audit() AuditFields {
	return a
}

// SetAudit replaces the audit fields. Promoted onto every entity pointer.
func (a *AuditFields) SetAudit(v AuditFields) {
	*a = v
}

// IsZero reports whether none of the audit fields has been set.
func (a AuditFields) IsZero() bool {
	return a.CreatedBy == "" && a.UpdatedBy == "" &&
		a.CreatedDate.IsZero() && a.UpdatedDate.IsZero()
}

// Entity is satisfied by a pointer to every record type the foundation
// services manage.
type Entity interface {
	Identity() string
	Audit() AuditFields
	SetAudit(AuditFields)
}

// EntityPtr constrains P to a pointer to T that satisfies Entity. Generic
// stores and services use it to reach audit fields of a value type.
type EntityPtr[T any] interface {
	*T
	Entity
}
