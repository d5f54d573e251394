package models

import "time"

// AuditFields mirrors the audit columns every table carries.
type AuditFields struct {
	CreatedBy   string    `db:"created_by"`
	CreatedDate time.Time `db:"created_date"`
	UpdatedBy   string    `db:"updated_by"`
	UpdatedDate time.Time `db:"updated_date"`
}
