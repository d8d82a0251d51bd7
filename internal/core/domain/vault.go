package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vault is a named savings sub-goal nested under an account. CurrentAmount
// grows only through deposits (or an explicit edit) and the parent account's
// balance shrinks by the same amount in the same store transaction.
type Vault struct {
	VaultID       string          `json:"vaultID"`   // Primary Key (e.g., UUID)
	AccountID     string          `json:"accountID"` // FK -> accounts.account_id (Not Null)
	UserID        string          `json:"userID"`    // FK -> users.user_id (Not Null)
	Name          string          `json:"name"`
	IconTag       string          `json:"iconTag"` // Presentation hint for the client
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	Deadline      time.Time       `json:"deadline"`
	AuditFields
}

// Progress returns the raw completion ratio. Callers that render a progress
// bar clamp with ClampedProgress; the raw value is retained for exceeded/
// overdue logic.
func (v Vault) Progress() decimal.Decimal {
	if v.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return v.CurrentAmount.Div(v.TargetAmount)
}

// ClampedProgress returns Progress limited to the [0, 1] display range.
func (v Vault) ClampedProgress() decimal.Decimal {
	p := v.Progress()
	if p.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	one := decimal.NewFromInt(1)
	if p.GreaterThan(one) {
		return one
	}
	return p
}

// IsCompleted reports whether the vault has reached its target.
func (v Vault) IsCompleted() bool {
	return !v.TargetAmount.IsZero() && v.CurrentAmount.GreaterThanOrEqual(v.TargetAmount)
}
