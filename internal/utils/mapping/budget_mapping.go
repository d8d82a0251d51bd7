package mapping

import (
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		UserID:      d.UserID,
		Category:    d.Category,
		Allocated:   d.Allocated,
		Month:       d.Month,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		UserID:      m.UserID,
		Category:    m.Category,
		Allocated:   m.Allocated,
		Month:       m.Month,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetSlice converts a slice of model Budgets to domain Budgets
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
