package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes linked bank accounts from mobile-money wallets.
type AccountKind string

const (
	Bank        AccountKind = "BANK"
	MobileMoney AccountKind = "MOBILE_MONEY"
)

// Account represents a linked bank or mobile-money source.
//
// Balance is authoritative: it is mutated only as a side effect of
// transaction creation/deletion or vault deposits affecting this account,
// never recomputed by re-summing ledger entries.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (e.g., UUID)
	UserID      string          `json:"userID"`    // FK -> users.user_id (Not Null)
	Institution string          `json:"institution"`
	Name        string          `json:"name"` // User-defined display name
	Kind        AccountKind     `json:"kind"` // BANK or MOBILE_MONEY
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
