// Package aggregation computes derived financial views over a ledger
// snapshot. Every function is a pure function of (entries, window, filters);
// callers re-run them on fresh snapshots instead of accumulating state, so
// duplicate reads can never double-count.
package aggregation

import (
	"sort"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaletteSize is the number of distinct chart colors the client renders.
// Category color assignment is palette index = first-appearance order modulo
// PaletteSize, so the same category set always maps to the same colors.
const PaletteSize = 8

// warningThreshold is the budget consumption ratio that flips the warning flag.
var warningThreshold = decimal.NewFromFloat(0.8)

// countable reports whether an entry participates in aggregation: templates
// are schedules rather than financial events, and entries with no date are
// malformed and excluded instead of aborting the whole computation.
func countable(e domain.Transaction) bool {
	return !e.IsRecurring && !e.TransactionDate.IsZero()
}

// SumByType sums the absolute amount of all countable entries of the given
// type. Expenses are summed as positive magnitudes regardless of stored sign.
func SumByType(entries []domain.Transaction, t domain.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if !countable(e) || e.Type != t {
			continue
		}
		total = total.Add(e.Amount.Abs())
	}
	return total
}

// Summarize computes income/expense totals and their net for a snapshot.
func Summarize(entries []domain.Transaction) domain.PeriodSummary {
	income := SumByType(entries, domain.Income)
	expense := SumByType(entries, domain.Expense)
	return domain.PeriodSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}
}

// BucketByCategory groups countable expense entries by category, summing
// magnitudes. Entries are ordered by (date, id) before bucketing so the
// first-appearance color index is deterministic for a given snapshot.
// Buckets are returned largest total first.
func BucketByCategory(entries []domain.Transaction) []domain.CategoryTotal {
	ordered := make([]domain.Transaction, 0, len(entries))
	for _, e := range entries {
		if countable(e) && e.Type == domain.Expense {
			ordered = append(ordered, e)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].TransactionDate.Equal(ordered[j].TransactionDate) {
			return ordered[i].TransactionDate.Before(ordered[j].TransactionDate)
		}
		return ordered[i].TransactionID < ordered[j].TransactionID
	})

	totals := make(map[string]decimal.Decimal)
	colorIndex := make(map[string]int)
	for _, e := range ordered {
		if _, seen := totals[e.Category]; !seen {
			colorIndex[e.Category] = len(totals) % PaletteSize
			totals[e.Category] = decimal.Zero
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount.Abs())
	}

	buckets := make([]domain.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		buckets = append(buckets, domain.CategoryTotal{
			Category:   category,
			Total:      total,
			ColorIndex: colorIndex[category],
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Total.Equal(buckets[j].Total) {
			return buckets[i].Total.GreaterThan(buckets[j].Total)
		}
		return buckets[i].Category < buckets[j].Category
	})
	return buckets
}

// PeriodWindow returns the half-open [start, end) calendar window of the
// given range containing ref: the ISO week (Monday start), calendar month,
// or calendar year, in ref's location.
func PeriodWindow(r domain.PeriodRange, ref time.Time) (time.Time, time.Time) {
	switch r {
	case domain.WeeklyRange:
		// time.Weekday is Sunday==0; shift so Monday starts the week.
		offset := (int(ref.Weekday()) + 6) % 7
		start := time.Date(ref.Year(), ref.Month(), ref.Day()-offset, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(0, 0, 7)
	case domain.YearlyRange:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(1, 0, 0)
	default: // MonthlyRange
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(0, 1, 0)
	}
}

// PreviousWindow returns PeriodWindow shifted back by exactly one unit.
func PreviousWindow(r domain.PeriodRange, ref time.Time) (time.Time, time.Time) {
	start, _ := PeriodWindow(r, ref)
	switch r {
	case domain.WeeklyRange:
		return start.AddDate(0, 0, -7), start
	case domain.YearlyRange:
		return start.AddDate(-1, 0, 0), start
	default:
		return start.AddDate(0, -1, 0), start
	}
}

// InWindow reports whether d falls inside the half-open window [start, end).
func InWindow(d, start, end time.Time) bool {
	return !d.Before(start) && d.Before(end)
}

// FilterWindow returns the entries whose date falls inside [start, end).
func FilterWindow(entries []domain.Transaction, start, end time.Time) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(entries))
	for _, e := range entries {
		if countable(e) && InWindow(e.TransactionDate, start, end) {
			out = append(out, e)
		}
	}
	return out
}

// ComparePeriods computes expense totals for the window containing ref and
// for the immediately preceding, equal-length window.
func ComparePeriods(entries []domain.Transaction, r domain.PeriodRange, ref time.Time) domain.PeriodComparison {
	curStart, curEnd := PeriodWindow(r, ref)
	prevStart, prevEnd := PreviousWindow(r, ref)
	return domain.PeriodComparison{
		PreviousTotal: SumByType(FilterWindow(entries, prevStart, prevEnd), domain.Expense),
		CurrentTotal:  SumByType(FilterWindow(entries, curStart, curEnd), domain.Expense),
	}
}

// BudgetProgress returns spent/allocated and whether the consumption has
// crossed the warning threshold. A zero allocation yields zero progress
// rather than a division by zero.
func BudgetProgress(spent, allocated decimal.Decimal) (decimal.Decimal, bool) {
	if allocated.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	progress := spent.Div(allocated)
	return progress, progress.GreaterThanOrEqual(warningThreshold)
}
