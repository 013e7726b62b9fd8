// Package dateutil provides strict calendar date parsing and arithmetic
// for training plan validation. All functions are pure (no I/O, no side
// effects); rejected input is reported through sentinel errors, never
// panics.
package dateutil

import (
	"errors"
	"regexp"
	"time"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// Date validation errors
	ErrDateRequired = errors.New("date is required")
	ErrDateFormat   = errors.New("date must be in YYYY-MM-DD format")
	ErrDateInvalid  = errors.New("date does not exist in the calendar")

	// Timestamp validation errors
	ErrTimestampRequired = errors.New("timestamp is required")
	ErrTimestampFormat   = errors.New("timestamp must be a full ISO-8601 date-time")
)

// =============================================================================
// Parsing
// =============================================================================

// DateLayout is the only accepted calendar date layout.
const DateLayout = "2006-01-02"

// dateShape enforces the exact YYYY-MM-DD shape before calendar
// validation, so "2026-1-12" is rejected even though time.Parse would
// not accept it either; the split keeps the two failure reasons apart.
var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a strict ISO-8601 calendar date (exactly YYYY-MM-DD).
// The returned time is midnight UTC on that date.
func ParseDate(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, ErrDateRequired
	}
	if !dateShape.MatchString(text) {
		return time.Time{}, ErrDateFormat
	}
	d, err := time.Parse(DateLayout, text)
	if err != nil {
		// Shape was correct, so the only remaining failure is an
		// impossible calendar date such as 2026-02-30.
		return time.Time{}, ErrDateInvalid
	}
	return d.UTC(), nil
}

// ParseTimestamp parses a full ISO-8601 date-time (RFC 3339), e.g.
// "2026-01-10T09:30:00Z" or "2026-01-10T09:30:00+02:00".
func ParseTimestamp(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, ErrTimestampRequired
	}
	ts, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return time.Time{}, ErrTimestampFormat
	}
	return ts, nil
}

// =============================================================================
// Arithmetic and Queries
// =============================================================================

// AddDays returns the date n days after d (n may be negative).
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// FormatDate renders a date back to its YYYY-MM-DD text form.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// IsMonday reports whether the date falls on a Monday.
func IsMonday(d time.Time) bool {
	return d.Weekday() == time.Monday
}

// DayOfWeek returns the English weekday name ("Monday".."Sunday"),
// used verbatim in validation messages.
func DayOfWeek(d time.Time) string {
	return d.Weekday().String()
}

// =============================================================================
// Range Validation
// =============================================================================

// RangeResult represents the outcome of a date range check.
type RangeResult struct {
	// Valid indicates whether the range is well ordered.
	Valid bool

	// Reason explains why the range was rejected (empty if Valid is true).
	Reason string
}

// ValidateRange checks that start is strictly before end. Equal dates
// are rejected: a season or block must span at least one day.
func ValidateRange(start, end time.Time) RangeResult {
	if !start.Before(end) {
		return RangeResult{
			Valid:  false,
			Reason: "start date " + FormatDate(start) + " must be strictly before end date " + FormatDate(end),
		}
	}
	return RangeResult{Valid: true}
}
