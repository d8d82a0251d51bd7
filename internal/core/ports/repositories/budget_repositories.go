package repositories

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
)

// BudgetReader defines read operations for budgets.
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget owned by the user.
	FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// ListBudgetsByMonth retrieves the user's budgets for a calendar month
	// (month is normalized to the first of the month, UTC).
	ListBudgetsByMonth(ctx context.Context, userID string, month time.Time) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	// SaveBudget persists a new budget. A user may have at most one budget
	// per (category, month); violations return apperrors.ErrDuplicate.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates a budget's allocation.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
