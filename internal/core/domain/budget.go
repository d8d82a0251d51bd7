package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a per-category spending allocation for one calendar month.
// Month is normalized to 00:00 UTC on the first of the month.
type Budget struct {
	BudgetID  string          `json:"budgetID"` // Primary Key (e.g., UUID)
	UserID    string          `json:"userID"`   // FK -> users.user_id (Not Null)
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
	Month     time.Time       `json:"month"`
	AuditFields
}
