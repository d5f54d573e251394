package apperrors

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Classify maps a raw failure onto its tier and the severity it is logged at.
func Classify(err error) (Tier, Severity) {
	switch {
	case err == nil:
		return TierService, SeverityError
	case errors.Is(err, ErrNullEntity),
		errors.Is(err, ErrNullCollection),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrProvenanceMismatch),
		errors.Is(err, ErrNotFound):
		return TierValidation, SeverityError
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrLocked):
		return TierDependencyValidation, SeverityError
	case errors.Is(err, ErrConnectivity):
		return TierDependency, SeverityCritical
	case errors.Is(err, ErrStorage):
		return TierDependency, SeverityError
	default:
		return TierService, SeverityError
	}
}

// KindOf reports the failure kind of err, falling back to the sentinels
// storage adapters wrap their driver errors with.
func KindOf(err error) Kind {
	var failure *FailureError
	if errors.As(err, &failure) {
		return failure.Kind
	}
	for _, kind := range []Kind{
		KindAlreadyExists, KindInvalidReference, KindLocked, KindConnectivity,
		KindStorage, KindNotFound, KindNullEntity, KindNullCollection,
		KindProvenanceMismatch, KindInvalid,
	} {
		if errors.Is(err, sentinelFor[kind]) {
			return kind
		}
	}
	return KindUnknown
}

// Classified wraps err into the ServiceError for entity. Errors that are
// already ServiceErrors pass through untouched so a failure is never wrapped
// (or logged) twice.
func Classified(entity string, err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	tier, severity := Classify(err)
	inner := err
	var failure *FailureError
	if !errors.As(err, &failure) {
		inner = storageFailure(entity, err)
	}

	return &ServiceError{
		Tier:     tier,
		Severity: severity,
		Entity:   entity,
		Message:  tierMessage(entity, tier),
		Inner:    inner,
	}
}

func storageFailure(entity string, err error) *FailureError {
	label := Humanize(entity)
	kind := KindOf(err)
	var msg string
	switch kind {
	case KindAlreadyExists:
		msg = fmt.Sprintf("Already exists %s error occurred.", label)
	case KindInvalidReference:
		msg = fmt.Sprintf("Invalid %s reference error occurred.", label)
	case KindLocked:
		msg = fmt.Sprintf("Locked %s record error occurred, please try again.", label)
	case KindConnectivity, KindStorage:
		msg = fmt.Sprintf("Failed %s storage error occurred, contact support.", label)
	case KindNotFound:
		msg = fmt.Sprintf("Couldn't find %s.", label)
	default:
		msg = fmt.Sprintf("Failed %s service error occurred, contact support.", label)
	}
	return &FailureError{Kind: kind, Message: msg, Cause: err}
}

func tierMessage(entity string, tier Tier) string {
	label := Humanize(entity)
	switch tier {
	case TierValidation:
		return fmt.Sprintf("%s validation error occurred, fix the errors and try again.", capitalize(label))
	case TierDependencyValidation:
		return fmt.Sprintf("%s dependency validation error occurred, fix the errors and try again.", capitalize(label))
	case TierDependency:
		return fmt.Sprintf("%s dependency error occurred, contact support.", capitalize(label))
	default:
		return fmt.Sprintf("%s service error occurred, contact support.", capitalize(label))
	}
}

// Humanize turns a type name such as "ConsumerAdoption" into "consumer adoption".
func Humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
