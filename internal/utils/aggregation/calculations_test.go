package aggregation_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/utils/aggregation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, category string, t domain.TransactionType, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		Name:            category,
		Category:        category,
		Type:            t,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: date,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleLedger() []domain.Transaction {
	return []domain.Transaction{
		entry("t1", "Groceries", domain.Expense, "120.50", day(2024, time.March, 2)),
		entry("t2", "Transport", domain.Expense, "45", day(2024, time.March, 5)),
		entry("t3", "Groceries", domain.Expense, "80.25", day(2024, time.March, 9)),
		entry("t4", "Salary", domain.Income, "2500", day(2024, time.March, 1)),
		entry("t5", "Rent", domain.Expense, "900", day(2024, time.February, 28)),
		entry("t6", "Freelance", domain.Income, "300", day(2024, time.February, 10)),
	}
}

func TestSumByType(t *testing.T) {
	entries := sampleLedger()
	assert.True(t, aggregation.SumByType(entries, domain.Expense).Equal(decimal.RequireFromString("1145.75")))
	assert.True(t, aggregation.SumByType(entries, domain.Income).Equal(decimal.NewFromInt(2800)))
}

func TestSumByTypeOrderIndependent(t *testing.T) {
	entries := sampleLedger()
	want := aggregation.SumByType(entries, domain.Expense)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.Transaction, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.True(t, aggregation.SumByType(shuffled, domain.Expense).Equal(want))
	}
}

func TestSumByTypeSkipsTemplatesAndMalformed(t *testing.T) {
	due := day(2024, time.April, 1)
	template := entry("tpl", "Rent", domain.Expense, "900", day(2024, time.March, 1))
	template.IsRecurring = true
	template.Frequency = domain.Monthly
	template.NextDueDate = &due

	undated := entry("bad", "Misc", domain.Expense, "50", time.Time{})

	entries := []domain.Transaction{
		template,
		undated,
		entry("ok", "Misc", domain.Expense, "10", day(2024, time.March, 3)),
	}
	assert.True(t, aggregation.SumByType(entries, domain.Expense).Equal(decimal.NewFromInt(10)))
}

func TestSumByTypeNegativeStoredAmounts(t *testing.T) {
	// Expenses stored with a negative sign still sum as positive magnitudes.
	entries := []domain.Transaction{
		entry("n1", "Misc", domain.Expense, "-30", day(2024, time.March, 3)),
		entry("n2", "Misc", domain.Expense, "20", day(2024, time.March, 4)),
	}
	assert.True(t, aggregation.SumByType(entries, domain.Expense).Equal(decimal.NewFromInt(50)))
}

func TestSumByTypeEmpty(t *testing.T) {
	assert.True(t, aggregation.SumByType(nil, domain.Expense).IsZero())
}

func TestBucketByCategory(t *testing.T) {
	buckets := aggregation.BucketByCategory(sampleLedger())
	require.Len(t, buckets, 3)

	// Sorted largest first.
	assert.Equal(t, "Rent", buckets[0].Category)
	assert.True(t, buckets[0].Total.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "Groceries", buckets[1].Category)
	assert.True(t, buckets[1].Total.Equal(decimal.RequireFromString("200.75")))
	assert.Equal(t, "Transport", buckets[2].Category)

	// Color index follows first appearance in date order: Rent (Feb 28),
	// Groceries (Mar 2), Transport (Mar 5).
	assert.Equal(t, 0, colorOf(buckets, "Rent"))
	assert.Equal(t, 1, colorOf(buckets, "Groceries"))
	assert.Equal(t, 2, colorOf(buckets, "Transport"))
}

func colorOf(buckets []domain.CategoryTotal, category string) int {
	for _, b := range buckets {
		if b.Category == category {
			return b.ColorIndex
		}
	}
	return -1
}

func TestBucketByCategoryStableColors(t *testing.T) {
	entries := sampleLedger()
	first := aggregation.BucketByCategory(entries)

	// Reversed input, same snapshot: identical colors.
	reversed := make([]domain.Transaction, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}
	second := aggregation.BucketByCategory(reversed)
	assert.Equal(t, first, second)
}

func TestBucketByCategoryPaletteWraps(t *testing.T) {
	entries := make([]domain.Transaction, 0, aggregation.PaletteSize+1)
	for i := 0; i <= aggregation.PaletteSize; i++ {
		entries = append(entries, entry(
			string(rune('a'+i)),
			string(rune('A'+i)),
			domain.Expense,
			"10",
			day(2024, time.March, 1+i),
		))
	}
	buckets := aggregation.BucketByCategory(entries)
	require.Len(t, buckets, aggregation.PaletteSize+1)
	// The category introduced after a full palette cycle reuses index 0.
	lastCategory := string(rune('A' + aggregation.PaletteSize))
	assert.Equal(t, 0, colorOf(buckets, lastCategory))
}

func TestPeriodWindow(t *testing.T) {
	ref := day(2024, time.March, 15) // a Friday

	start, end := aggregation.PeriodWindow(domain.WeeklyRange, ref)
	assert.True(t, start.Equal(day(2024, time.March, 11))) // Monday
	assert.True(t, end.Equal(day(2024, time.March, 18)))

	start, end = aggregation.PeriodWindow(domain.MonthlyRange, ref)
	assert.True(t, start.Equal(day(2024, time.March, 1)))
	assert.True(t, end.Equal(day(2024, time.April, 1)))

	start, end = aggregation.PeriodWindow(domain.YearlyRange, ref)
	assert.True(t, start.Equal(day(2024, time.January, 1)))
	assert.True(t, end.Equal(day(2025, time.January, 1)))
}

func TestPeriodWindowWeekStartsMonday(t *testing.T) {
	// A Sunday belongs to the week that began the previous Monday.
	sunday := day(2024, time.March, 17)
	start, end := aggregation.PeriodWindow(domain.WeeklyRange, sunday)
	assert.True(t, start.Equal(day(2024, time.March, 11)))
	assert.True(t, end.Equal(day(2024, time.March, 18)))

	// A Monday starts its own week.
	monday := day(2024, time.March, 11)
	start, _ = aggregation.PeriodWindow(domain.WeeklyRange, monday)
	assert.True(t, start.Equal(monday))
	_ = end
}

func TestPreviousWindowAdjacency(t *testing.T) {
	ref := day(2024, time.March, 15)
	for _, r := range []domain.PeriodRange{domain.WeeklyRange, domain.MonthlyRange, domain.YearlyRange} {
		curStart, _ := aggregation.PeriodWindow(r, ref)
		prevStart, prevEnd := aggregation.PreviousWindow(r, ref)
		assert.True(t, prevEnd.Equal(curStart), "range %s: previous window must end where current starts", r)
		assert.True(t, prevStart.Before(prevEnd))
	}
}

func TestComparePeriods(t *testing.T) {
	cmp := aggregation.ComparePeriods(sampleLedger(), domain.MonthlyRange, day(2024, time.March, 20))
	assert.True(t, cmp.CurrentTotal.Equal(decimal.RequireFromString("245.75")), "got %s", cmp.CurrentTotal)
	assert.True(t, cmp.PreviousTotal.Equal(decimal.NewFromInt(900)), "got %s", cmp.PreviousTotal)
}

func TestComparePeriodsEmptyLedger(t *testing.T) {
	cmp := aggregation.ComparePeriods(nil, domain.WeeklyRange, day(2024, time.March, 20))
	assert.True(t, cmp.CurrentTotal.IsZero())
	assert.True(t, cmp.PreviousTotal.IsZero())
}

func TestBudgetProgress(t *testing.T) {
	progress, warning := aggregation.BudgetProgress(decimal.NewFromInt(80), decimal.NewFromInt(100))
	assert.True(t, progress.Equal(decimal.RequireFromString("0.8")))
	assert.True(t, warning)

	progress, warning = aggregation.BudgetProgress(decimal.RequireFromString("79.99"), decimal.NewFromInt(100))
	assert.False(t, warning)
	assert.True(t, progress.LessThan(decimal.RequireFromString("0.8")))

	progress, warning = aggregation.BudgetProgress(decimal.NewFromInt(50), decimal.Zero)
	assert.True(t, progress.IsZero())
	assert.False(t, warning)

	progress, warning = aggregation.BudgetProgress(decimal.NewFromInt(150), decimal.NewFromInt(100))
	assert.True(t, progress.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, warning)
}

func TestSummarize(t *testing.T) {
	s := aggregation.Summarize(sampleLedger())
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(2800)))
	assert.True(t, s.TotalExpense.Equal(decimal.RequireFromString("1145.75")))
	assert.True(t, s.Net.Equal(decimal.RequireFromString("1654.25")))
}
