package recurrence_test

import (
	"testing"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/utils/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddPeriod(t *testing.T) {
	tests := []struct {
		name string
		prev time.Time
		freq domain.RecurrenceFrequency
		want time.Time
	}{
		{"daily", date(2024, time.March, 14), domain.Daily, date(2024, time.March, 15)},
		{"daily across month end", date(2024, time.January, 31), domain.Daily, date(2024, time.February, 1)},
		{"weekly", date(2024, time.March, 4), domain.Weekly, date(2024, time.March, 11)},
		{"weekly across year end", date(2023, time.December, 28), domain.Weekly, date(2024, time.January, 4)},
		{"monthly mid-month", date(2024, time.March, 15), domain.Monthly, date(2024, time.April, 15)},
		{"monthly jan 31 clamps to feb 29", date(2024, time.January, 31), domain.Monthly, date(2024, time.February, 29)},
		{"monthly feb 29 recovers to mar 31", date(2024, time.February, 29), domain.Monthly, date(2024, time.March, 31)},
		{"monthly jan 31 non-leap clamps to feb 28", date(2023, time.January, 31), domain.Monthly, date(2023, time.February, 28)},
		{"monthly feb 28 non-leap recovers to mar 31", date(2023, time.February, 28), domain.Monthly, date(2023, time.March, 31)},
		{"monthly dec rolls year", date(2024, time.December, 10), domain.Monthly, date(2025, time.January, 10)},
		{"yearly", date(2024, time.May, 20), domain.Yearly, date(2025, time.May, 20)},
		{"yearly feb 29 clamps to feb 28", date(2024, time.February, 29), domain.Yearly, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recurrence.AddPeriod(tt.prev, tt.freq)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestAddPeriodUnknownFrequency(t *testing.T) {
	_, err := recurrence.AddPeriod(date(2024, time.January, 1), domain.RecurrenceFrequency("FORTNIGHTLY"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// Stepping twice from an overdue Jan 31 monthly schedule must land on
// Feb 29 and then Mar 31, never sliding to the 29th permanently.
func TestAddPeriodMonthlyCatchUpSequence(t *testing.T) {
	due := date(2024, time.January, 31)

	due, err := recurrence.AddPeriod(due, domain.Monthly)
	require.NoError(t, err)
	assert.True(t, due.Equal(date(2024, time.February, 29)))

	due, err = recurrence.AddPeriod(due, domain.Monthly)
	require.NoError(t, err)
	assert.True(t, due.Equal(date(2024, time.March, 31)))
}

func TestAddPeriodPreservesTimeOfDay(t *testing.T) {
	prev := time.Date(2024, time.June, 30, 9, 30, 0, 0, time.UTC)
	got, err := recurrence.AddPeriod(prev, domain.Monthly)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 31, got.Day())
	assert.Equal(t, time.July, got.Month())
}
