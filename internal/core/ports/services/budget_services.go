package services

import (
	"context"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// BudgetSvcFacade manages per-category monthly spending allocations.
type BudgetSvcFacade interface {
	// CreateBudget creates a budget for one (category, month) pair.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// ListBudgets retrieves the user's budgets for a month ("2006-01").
	ListBudgets(ctx context.Context, userID, month string) ([]domain.Budget, error)

	// UpdateBudget changes a budget's allocation.
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
