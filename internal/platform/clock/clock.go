package clock

import "time"

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current time, truncated to the microsecond precision
// Postgres keeps for timestamptz columns.
func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Fixed always returns the same instant. Used by tooling and tests.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
