package services

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// ReportingSvcFacade computes read-only derived views over the user's
// ledger. Every call fetches a fresh snapshot and recomputes from scratch;
// nothing is accumulated across calls.
type ReportingSvcFacade interface {
	// GetSummary returns income/expense totals for the calendar window of
	// the given range containing referenceDate.
	GetSummary(ctx context.Context, userID string, r domain.PeriodRange, referenceDate time.Time) (*dto.SummaryResponse, error)

	// GetCategoryBreakdown returns expense totals grouped by category for
	// the window, with stable palette color indices.
	GetCategoryBreakdown(ctx context.Context, userID string, r domain.PeriodRange, referenceDate time.Time) (*dto.CategoryBreakdownResponse, error)

	// GetPeriodComparison returns expense totals for the current window and
	// the immediately preceding, equal-length window.
	GetPeriodComparison(ctx context.Context, userID string, r domain.PeriodRange, referenceDate time.Time) (*dto.PeriodComparisonResponse, error)

	// GetBudgetStatus returns per-budget consumption for the calendar month
	// containing referenceDate.
	GetBudgetStatus(ctx context.Context, userID string, referenceDate time.Time) (*dto.ListBudgetStatusResponse, error)
}
