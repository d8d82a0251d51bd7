package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/pocketfin/pocketfin_backend/internal/utils/aggregation"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
	budgetRepo portsrepo.BudgetReader
}

// NewReportingService creates the reporting service. All report views are
// recomputed from a fresh ledger snapshot on every call.
func NewReportingService(ledgerRepo portsrepo.LedgerReader, budgetRepo portsrepo.BudgetReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo: ledgerRepo,
		budgetRepo: budgetRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) windowEntries(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	return s.ledgerRepo.ListEntries(ctx, userID, portsrepo.LedgerFilters{From: start, To: end})
}

func (s *reportingService) GetSummary(ctx context.Context, userID string, r domain.PeriodRange, referenceDate time.Time) (*dto.SummaryResponse, error) {
	if !domain.ValidPeriodRange(r) {
		return nil, fmt.Errorf("unknown period range %q: %w", r, apperrors.ErrValidation)
	}

	start, end := aggregation.PeriodWindow(r, referenceDate)
	entries, err := s.windowEntries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	resp := dto.ToSummaryResponse(r, start, end, aggregation.Summarize(entries))
	return &resp, nil
}

func (s *reportingService) GetCategoryBreakdown(ctx context.Context, userID string, r domain.PeriodRange, referenceDate time.Time) (*dto.CategoryBreakdownResponse, error) {
	if !domain.ValidPeriodRange(r) {
		return nil, fmt.Errorf("unknown period range %q: %w", r, apperrors.ErrValidation)
	}

	start, end := aggregation.PeriodWindow(r, referenceDate)
	entries, err := s.windowEntries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	resp := dto.ToCategoryBreakdownResponse(r, start, end, aggregation.BucketByCategory(entries))
	return &resp, nil
}

func (s *reportingService) GetPeriodComparison(ctx context.Context, userID string, r domain.PeriodRange, referenceDate time.Time) (*dto.PeriodComparisonResponse, error) {
	if !domain.ValidPeriodRange(r) {
		return nil, fmt.Errorf("unknown period range %q: %w", r, apperrors.ErrValidation)
	}

	// One fetch spanning both windows; the pure comparison re-buckets it.
	prevStart, _ := aggregation.PreviousWindow(r, referenceDate)
	_, curEnd := aggregation.PeriodWindow(r, referenceDate)
	entries, err := s.windowEntries(ctx, userID, prevStart, curEnd)
	if err != nil {
		return nil, err
	}

	resp := dto.ToPeriodComparisonResponse(r, aggregation.ComparePeriods(entries, r, referenceDate))
	return &resp, nil
}

func (s *reportingService) GetBudgetStatus(ctx context.Context, userID string, referenceDate time.Time) (*dto.ListBudgetStatusResponse, error) {
	month := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	budgets, err := s.budgetRepo.ListBudgetsByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	start, end := aggregation.PeriodWindow(domain.MonthlyRange, referenceDate)
	entries, err := s.windowEntries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	buckets := aggregation.BucketByCategory(entries)

	statuses := make([]domain.BudgetStatus, len(budgets))
	for i, b := range budgets {
		spent := decimal.Zero
		for _, bucket := range buckets {
			if bucket.Category == b.Category {
				spent = bucket.Total
				break
			}
		}
		progress, warning := aggregation.BudgetProgress(spent, b.Allocated)
		statuses[i] = domain.BudgetStatus{
			BudgetID:  b.BudgetID,
			Category:  b.Category,
			Allocated: b.Allocated,
			Spent:     spent,
			Progress:  progress,
			Warning:   warning,
		}
	}

	resp := dto.ToListBudgetStatusResponse(month, statuses)
	return &resp, nil
}
