package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vault represents a savings sub-goal row nested under an account.
type Vault struct {
	VaultID       string          `db:"vault_id"`
	AccountID     string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	IconTag       string          `db:"icon_tag"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	Deadline      time.Time       `db:"deadline"`
	AuditFields
}
