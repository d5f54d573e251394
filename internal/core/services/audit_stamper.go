package services

import (
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/validation"
)

// StampForAdd assigns the creating actor and time to all four audit fields.
// When the caller already supplied any of them the fields pass through
// unchanged and are left for the validator to judge.
func StampForAdd(audit domain.AuditFields, actorID string, now time.Time) domain.AuditFields {
	if !audit.IsZero() {
		return audit
	}
	return domain.AuditFields{
		CreatedBy:   actorID,
		CreatedDate: now,
		UpdatedBy:   actorID,
		UpdatedDate: now,
	}
}

// StampForModify moves UpdatedBy/UpdatedDate forward. Creation fields are untouched.
func StampForModify(audit domain.AuditFields, actorID string, now time.Time) domain.AuditFields {
	audit.UpdatedBy = actorID
	audit.UpdatedDate = now
	return audit
}

// EnsureProvenanceUnchanged compares a stamped modify candidate with the
// record held in storage. A nil stored record is a not-found failure.
func EnsureProvenanceUnchanged[T any, P domain.EntityPtr[T]](entity string, candidate, stored P) error {
	if stored == nil {
		return notFound(entity, candidate.Identity(), nil)
	}

	submitted := candidate.Audit()
	persisted := stored.Audit()

	errs := validation.Errors{}
	validation.Validate(errs,
		validation.On("CreatedBy", validation.SameText(submitted.CreatedBy, persisted.CreatedBy, "CreatedBy")),
		validation.On("CreatedDate", validation.SameDate(submitted.CreatedDate, persisted.CreatedDate, "CreatedDate")),
		validation.On("UpdatedDate", validation.DifferentDate(submitted.UpdatedDate, persisted.UpdatedDate, "UpdatedDate")),
	)
	if errs.HasErrors() {
		return apperrors.NewInvalid(apperrors.KindProvenanceMismatch, invalidMessage(entity), errs)
	}
	return nil
}
