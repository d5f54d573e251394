package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/validation"
)

// Mode selects which audit rules apply.
type Mode int

const (
	ModeAdd Mode = iota
	ModeModify
)

func (m Mode) String() string {
	if m == ModeModify {
		return "modify"
	}
	return "add"
}

// FieldRules returns the entity-specific checks for one record.
type FieldRules[T any] func(entity *T) []validation.Check

// ValidateEntity runs the identity, entity and audit rules for mode against
// entity and returns a FailureError carrying every violation, or nil.
func ValidateEntity[T any, P domain.EntityPtr[T]](
	entity string,
	mode Mode,
	candidate P,
	rules FieldRules[T],
	actorID string,
	now time.Time,
	window time.Duration,
) error {
	if candidate == nil {
		return nullEntity(entity)
	}

	errs := validation.Errors{}
	validation.Validate(errs, validation.On("Id", validation.RequiredID(candidate.Identity())))
	if rules != nil {
		validation.Validate(errs, rules((*T)(candidate))...)
	}
	validation.Validate(errs, auditChecks[T, P](mode, candidate, actorID, now, window)...)

	if errs.HasErrors() {
		return apperrors.NewInvalid(apperrors.KindInvalid, invalidMessage(entity), errs)
	}
	return nil
}

func auditChecks[T any, P domain.EntityPtr[T]](mode Mode, candidate P, actorID string, now time.Time, window time.Duration) []validation.Check {
	audit := candidate.Audit()
	checks := []validation.Check{
		validation.On("CreatedBy", validation.RequiredText(audit.CreatedBy)),
		validation.On("CreatedDate", validation.RequiredDate(audit.CreatedDate)),
		validation.On("UpdatedBy", validation.RequiredText(audit.UpdatedBy)),
		validation.On("UpdatedDate", validation.RequiredDate(audit.UpdatedDate)),
	}

	switch mode {
	case ModeAdd:
		checks = append(checks,
			validation.On("UpdatedBy", validation.SameText(audit.UpdatedBy, audit.CreatedBy, "CreatedBy")),
			validation.On("UpdatedDate", validation.SameDate(audit.UpdatedDate, audit.CreatedDate, "CreatedDate")),
			validation.On("CreatedDate", validation.RecentDate(audit.CreatedDate, now, window)),
		)
	case ModeModify:
		checks = append(checks,
			validation.On("UpdatedBy", validation.SameText(audit.UpdatedBy, actorID, "CurrentActor")),
			validation.On("UpdatedDate", validation.DifferentDate(audit.UpdatedDate, audit.CreatedDate, "CreatedDate")),
			validation.On("UpdatedDate", validation.RecentDate(audit.UpdatedDate, now, window)),
		)
	}
	return checks
}

func invalidMessage(entity string) string {
	return fmt.Sprintf("Invalid %s. Please correct the errors and try again.", apperrors.Humanize(entity))
}

func nullEntity(entity string) error {
	return apperrors.NewFailure(apperrors.KindNullEntity,
		fmt.Sprintf("Null %s error occurred.", apperrors.Humanize(entity)), nil)
}

func nullCollection(entity string) error {
	return apperrors.NewFailure(apperrors.KindNullCollection,
		fmt.Sprintf("Null %s collection error occurred.", apperrors.Humanize(entity)), nil)
}

func notFound(entity, id string, cause error) error {
	return apperrors.NewFailure(apperrors.KindNotFound,
		fmt.Sprintf("Couldn't find %s with id: %s.", apperrors.Humanize(entity), id), cause)
}

func invalidID(entity, id string) error {
	errs := validation.Errors{}
	validation.Validate(errs, validation.On("Id", validation.RequiredID(id)))
	if errs.HasErrors() {
		return apperrors.NewInvalid(apperrors.KindInvalid, invalidMessage(entity), errs)
	}
	return nil
}
