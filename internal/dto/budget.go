package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a monthly budget.
// Month uses "2006-01" form.
type CreateBudgetRequest struct {
	Category  string          `json:"category" binding:"required"`
	Allocated decimal.Decimal `json:"allocated" binding:"required"`
	Month     string          `json:"month" binding:"required"`
}

// UpdateBudgetRequest defines the fields allowed for editing a budget.
type UpdateBudgetRequest struct {
	Allocated *decimal.Decimal `json:"allocated"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID  string          `json:"budgetID"`
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
	Month     string          `json:"month"`
}

// ListBudgetsResponse wraps the budgets for one month.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetStatusResponse is one budget's consumption over its month.
type BudgetStatusResponse struct {
	BudgetID  string          `json:"budgetID"`
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Progress  decimal.Decimal `json:"progress"`
	Warning   bool            `json:"warning"`
}

// ListBudgetStatusResponse wraps per-budget consumption for a month.
type ListBudgetStatusResponse struct {
	Month   string                 `json:"month"`
	Budgets []BudgetStatusResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:  b.BudgetID,
		Category:  b.Category,
		Allocated: b.Allocated,
		Month:     b.Month.Format("2006-01"),
	}
}

// ToListBudgetsResponse converts a slice of domain budgets.
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Budgets: out}
}

// ToBudgetStatusResponse converts a domain.BudgetStatus to its DTO.
func ToBudgetStatusResponse(s domain.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetID:  s.BudgetID,
		Category:  s.Category,
		Allocated: s.Allocated,
		Spent:     s.Spent,
		Progress:  s.Progress,
		Warning:   s.Warning,
	}
}

// ToListBudgetStatusResponse converts a month of budget statuses.
func ToListBudgetStatusResponse(month time.Time, statuses []domain.BudgetStatus) ListBudgetStatusResponse {
	out := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		out[i] = ToBudgetStatusResponse(s)
	}
	return ListBudgetStatusResponse{Month: month.Format("2006-01"), Budgets: out}
}
