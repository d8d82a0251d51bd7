package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger row moves money in or out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction represents a ledger row, either a recurring template or a
// concrete dated entry. Frequency and NextDueDate are only set on templates;
// ParentTemplateID only on entries spawned from one.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	UserID           string          `db:"user_id"`
	Name             string          `db:"name"`
	Amount           decimal.Decimal `db:"amount"`
	Category         string          `db:"category"`
	TransactionType  TransactionType `db:"transaction_type"`
	TransactionDate  time.Time       `db:"transaction_date"`
	AccountID        *string         `db:"account_id"`
	PaymentMethod    *string         `db:"payment_method"`
	IsRecurring      bool            `db:"is_recurring"`
	Frequency        *string         `db:"frequency"`
	NextDueDate      *time.Time      `db:"next_due_date"`
	ParentTemplateID *string         `db:"parent_template_id"`
	AuditFields
}
