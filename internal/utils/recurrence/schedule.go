// Package recurrence implements the schedule arithmetic for recurring
// transaction templates: stepping a due date forward by one period with
// calendar-aware month-length clamping.
package recurrence

import (
	"fmt"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
)

// AddPeriod returns the due date one frequency period after prev.
//
// Daily and weekly step by fixed day counts. Monthly and yearly step by
// calendar units keeping the same day-of-month, clamped to the target
// month's length. A due date falling on the last day of its month is
// treated as end-of-month anchored, so Jan 31 -> Feb 29 -> Mar 31 rather
// than drifting down to the 29th forever.
func AddPeriod(prev time.Time, freq domain.RecurrenceFrequency) (time.Time, error) {
	switch freq {
	case domain.Daily:
		return prev.AddDate(0, 0, 1), nil
	case domain.Weekly:
		return prev.AddDate(0, 0, 7), nil
	case domain.Monthly:
		return addMonths(prev, 1), nil
	case domain.Yearly:
		return addMonths(prev, 12), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown recurrence frequency %q", apperrors.ErrValidation, freq)
	}
}

// addMonths adds months calendar units to t without the day-overflow
// normalization of time.AddDate (which turns Jan 31 + 1 month into Mar 2/3).
func addMonths(t time.Time, months int) time.Time {
	day := t.Day()
	if day == daysInMonth(t.Year(), t.Month()) {
		// End-of-month anchored: ask for the 31st and let the clamp below
		// settle on whatever the target month actually has.
		day = 31
	}

	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
