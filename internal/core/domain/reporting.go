package domain

import (
	"github.com/shopspring/decimal"
)

// PeriodRange selects the calendar window reports aggregate over.
type PeriodRange string

const (
	WeeklyRange  PeriodRange = "WEEKLY"
	MonthlyRange PeriodRange = "MONTHLY"
	YearlyRange  PeriodRange = "YEARLY"
)

// ValidPeriodRange reports whether r is one of the supported ranges.
func ValidPeriodRange(r PeriodRange) bool {
	switch r {
	case WeeklyRange, MonthlyRange, YearlyRange:
		return true
	}
	return false
}

// CategoryTotal is one slice of an expense-by-category breakdown.
// ColorIndex is a stable palette index so repeated computations over the
// same category set render the same colors.
type CategoryTotal struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	ColorIndex int             `json:"colorIndex"`
}

// PeriodSummary holds income/expense totals for one calendar window.
type PeriodSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}

// PeriodComparison pairs the current window's expense total with the
// immediately preceding, equal-length window.
type PeriodComparison struct {
	PreviousTotal decimal.Decimal `json:"previousTotal"`
	CurrentTotal  decimal.Decimal `json:"currentTotal"`
}

// BudgetStatus is the consumption of one budget over its month.
type BudgetStatus struct {
	BudgetID  string          `json:"budgetID"`
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Progress  decimal.Decimal `json:"progress"` // Spent / Allocated, 0 when nothing allocated
	Warning   bool            `json:"warning"`  // Progress >= 0.8
}
