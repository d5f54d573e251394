// Package validation holds the field rules shared by every entity validator.
// A rule evaluates to a Condition; Validate collects every failing condition
// into an Errors bag keyed by field name.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DateLayout is used when a date is echoed back in a violation message.
const DateLayout = time.RFC3339

// Errors is a field-keyed bag of violation messages. Messages for a field keep
// the order they were added in.
type Errors map[string][]string

// Add appends a violation for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// HasErrors reports whether any violation was recorded.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// Merge copies every violation of other into e.
func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		for _, m := range messages {
			e.Add(field, m)
		}
	}
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f, strings.Join(e[f], ", "))
	}
	return b.String()
}

// Condition is the outcome of one rule.
type Condition struct {
	Invalid bool
	Message string
}

// Check pairs a condition with the field it reports against.
type Check struct {
	Field     string
	Condition Condition
}

// Validate evaluates every check and records each failing one. It never
// short-circuits, so a field can collect several messages.
func Validate(errs Errors, checks ...Check) {
	for _, c := range checks {
		if c.Condition.Invalid {
			errs.Add(c.Field, c.Condition.Message)
		}
	}
}

// On is shorthand for building a Check.
func On(field string, cond Condition) Check {
	return Check{Field: field, Condition: cond}
}

// IsMissing treats empty and whitespace-only strings as absent.
func IsMissing(text string) bool {
	return strings.TrimSpace(text) == ""
}

// RequiredID fails for empty, whitespace-only and nil-UUID identifiers.
func RequiredID(id string) Condition {
	trimmed := strings.TrimSpace(id)
	return Condition{
		Invalid: trimmed == "" || trimmed == uuid.Nil.String(),
		Message: "Id is required",
	}
}

// RequiredText fails for empty or whitespace-only text.
func RequiredText(text string) Condition {
	return Condition{
		Invalid: IsMissing(text),
		Message: "Text is required",
	}
}

// RequiredDate fails for the zero time.
func RequiredDate(date time.Time) Condition {
	return Condition{
		Invalid: date.IsZero(),
		Message: "Date is required",
	}
}

// MaxLength fails when text has more than max characters.
func MaxLength(text string, max int) Condition {
	n := utf8.RuneCountInString(text)
	return Condition{
		Invalid: n > max,
		Message: fmt.Sprintf("Text exceeds max length of %d characters but found %d", max, n),
	}
}

// SameText fails when first differs from second.
func SameText(first, second, secondName string) Condition {
	return Condition{
		Invalid: first != second,
		Message: fmt.Sprintf("Text is not the same as %s", secondName),
	}
}

// SameDate fails when first and second are different instants.
func SameDate(first, second time.Time, secondName string) Condition {
	return Condition{
		Invalid: !first.Equal(second),
		Message: fmt.Sprintf("Date is not the same as %s", secondName),
	}
}

// DifferentDate fails when first and second are the same instant.
func DifferentDate(first, second time.Time, secondName string) Condition {
	return Condition{
		Invalid: first.Equal(second),
		Message: fmt.Sprintf("Date is the same as %s", secondName),
	}
}

// RecentDate fails when date is outside [now-window, now].
func RecentDate(date, now time.Time, window time.Duration) Condition {
	start := now.Add(-window)
	return Condition{
		Invalid: date.Before(start) || date.After(now),
		Message: fmt.Sprintf(
			"Date is not recent. Expected a value between %s and %s but found %s",
			start.Format(DateLayout), now.Format(DateLayout), date.Format(DateLayout)),
	}
}
