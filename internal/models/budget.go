package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a per-category monthly allocation row. Month is stored
// as the first day of the month at 00:00 UTC; (user_id, category, month) is
// unique.
type Budget struct {
	BudgetID  string          `db:"budget_id"`
	UserID    string          `db:"user_id"`
	Category  string          `db:"category"`
	Allocated decimal.Decimal `db:"allocated"`
	Month     time.Time       `db:"month"`
	AuditFields
}
