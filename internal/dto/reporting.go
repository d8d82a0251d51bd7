package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams defines query parameters shared by report endpoints.
type ReportParams struct {
	Range         domain.PeriodRange `form:"range,default=MONTHLY"`
	ReferenceDate string             `form:"referenceDate"` // YYYY-MM-DD, defaults to today
}

// SummaryResponse holds income/expense totals for one calendar window.
type SummaryResponse struct {
	Range        domain.PeriodRange `json:"range"`
	From         string             `json:"from"`
	To           string             `json:"to"`
	TotalIncome  decimal.Decimal    `json:"totalIncome"`
	TotalExpense decimal.Decimal    `json:"totalExpense"`
	Net          decimal.Decimal    `json:"net"`
}

// CategoryTotalResponse is one slice of the category breakdown.
type CategoryTotalResponse struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	ColorIndex int             `json:"colorIndex"`
}

// CategoryBreakdownResponse holds the expense-by-category breakdown.
type CategoryBreakdownResponse struct {
	Range      domain.PeriodRange      `json:"range"`
	From       string                  `json:"from"`
	To         string                  `json:"to"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// PeriodComparisonResponse pairs the current and prior window expense totals.
type PeriodComparisonResponse struct {
	Range         domain.PeriodRange `json:"range"`
	PreviousTotal decimal.Decimal    `json:"previousTotal"`
	CurrentTotal  decimal.Decimal    `json:"currentTotal"`
}

// ToSummaryResponse converts a domain summary and its window to a DTO.
func ToSummaryResponse(r domain.PeriodRange, start, end time.Time, s domain.PeriodSummary) SummaryResponse {
	return SummaryResponse{
		Range:        r,
		From:         start.Format("2006-01-02"),
		To:           end.Format("2006-01-02"),
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Net:          s.Net,
	}
}

// ToCategoryBreakdownResponse converts domain category totals to a DTO.
func ToCategoryBreakdownResponse(r domain.PeriodRange, start, end time.Time, buckets []domain.CategoryTotal) CategoryBreakdownResponse {
	out := make([]CategoryTotalResponse, len(buckets))
	for i, b := range buckets {
		out[i] = CategoryTotalResponse{Category: b.Category, Total: b.Total, ColorIndex: b.ColorIndex}
	}
	return CategoryBreakdownResponse{
		Range:      r,
		From:       start.Format("2006-01-02"),
		To:         end.Format("2006-01-02"),
		Categories: out,
	}
}

// ToPeriodComparisonResponse converts a domain comparison to a DTO.
func ToPeriodComparisonResponse(r domain.PeriodRange, c domain.PeriodComparison) PeriodComparisonResponse {
	return PeriodComparisonResponse{
		Range:         r,
		PreviousTotal: c.PreviousTotal,
		CurrentTotal:  c.CurrentTotal,
	}
}
