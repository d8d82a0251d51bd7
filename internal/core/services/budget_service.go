package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates the budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// parseMonth normalizes a "2006-01" string to the first of the month, UTC.
func parseMonth(month string) (time.Time, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, fmt.Errorf("month must use YYYY-MM form: %w", apperrors.ErrValidation)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Allocated.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("allocation must be positive: %w", apperrors.ErrValidation)
	}
	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      userID,
		Category:    req.Category,
		Allocated:   req.Allocated,
		Month:       month,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to create budget",
			slog.String("user_id", userID),
			slog.String("category", req.Category))
		return nil, err
	}

	return &budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID, month string) ([]domain.Budget, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	return s.budgetRepo.ListBudgetsByMonth(ctx, userID, m)
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Allocated != nil {
		if req.Allocated.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("allocation must be positive: %w", apperrors.ErrValidation)
		}
		budget.Allocated = *req.Allocated
	}
	budget.Touch(userID, time.Now())

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return err
	}
	return nil
}
