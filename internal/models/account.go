package models

import (
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes linked bank accounts from mobile-money wallets.
type AccountKind string

const (
	Bank        AccountKind = "BANK"
	MobileMoney AccountKind = "MOBILE_MONEY"
)

// Account represents a linked funding source row. Balance is the persisted
// authoritative balance, adjusted in the same transaction as the ledger
// write that moves it.
type Account struct {
	AccountID   string          `db:"account_id"`
	UserID      string          `db:"user_id"`
	Institution string          `db:"institution"`
	Name        string          `db:"name"`
	Kind        AccountKind     `db:"kind"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
