package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry moves money in or out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// RecurrenceFrequency defines how often a recurring template spawns an entry.
type RecurrenceFrequency string

const (
	Daily   RecurrenceFrequency = "DAILY"
	Weekly  RecurrenceFrequency = "WEEKLY"
	Monthly RecurrenceFrequency = "MONTHLY"
	Yearly  RecurrenceFrequency = "YEARLY"
)

// ValidFrequency reports whether f is one of the supported frequencies.
func ValidFrequency(f RecurrenceFrequency) bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Transaction is a single ledger record. It is either a recurring template
// (IsRecurring true, carries Frequency and NextDueDate, never counted in
// aggregation) or a leaf entry (a concrete dated financial event, optionally
// tracing back to the template that spawned it via ParentTemplateID).
type Transaction struct {
	TransactionID    string              `json:"transactionID"` // Primary Key (e.g., UUID)
	UserID           string              `json:"userID"`        // FK -> users.user_id (Not Null)
	Name             string              `json:"name"`          // Display name, e.g. "Rent"
	Amount           decimal.Decimal     `json:"amount"`        // Positive magnitude; sign is implied by Type
	Category         string              `json:"category"`      // Free-text label
	Type             TransactionType     `json:"type"`          // INCOME or EXPENSE (Not Null)
	TransactionDate  time.Time           `json:"transactionDate"`
	AccountID        *string             `json:"accountID,omitempty"`     // Nullable FK -> accounts.account_id
	PaymentMethod    *string             `json:"paymentMethod,omitempty"` // Optional label, expense-only by convention
	IsRecurring      bool                `json:"isRecurring"`
	Frequency        RecurrenceFrequency `json:"frequency,omitempty"`        // Template-only
	NextDueDate      *time.Time          `json:"nextDueDate,omitempty"`      // Template-only schedule pointer
	ParentTemplateID *string             `json:"parentTemplateID,omitempty"` // Leaf-only, set on spawned instances
	AuditFields
}

// IsTemplate reports whether the record is a recurring template rather than
// a concrete ledger event.
func (t Transaction) IsTemplate() bool {
	return t.IsRecurring && t.NextDueDate != nil
}

// IsSpawned reports whether the record was generated from a template.
func (t Transaction) IsSpawned() bool {
	return !t.IsRecurring && t.ParentTemplateID != nil
}

// SignedAmount returns the amount with the sign implied by the entry type:
// income positive, expense negative.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}
