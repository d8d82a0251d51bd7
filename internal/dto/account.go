package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to link a new account.
type CreateAccountRequest struct {
	Institution    string             `json:"institution" binding:"required"`
	Name           string             `json:"name" binding:"required"`
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=BANK MOBILE_MONEY"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
}

// UpdateAccountRequest defines the fields allowed for updating an account.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateAccountRequest struct {
	Institution *string `json:"institution"`
	Name        *string `json:"name"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Institution   string             `json:"institution"`
	Name          string             `json:"name"`
	Kind          domain.AccountKind `json:"kind"`
	Balance       decimal.Decimal    `json:"balance"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Institution:   acc.Institution,
		Name:          acc.Name,
		Kind:          acc.Kind,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain accounts.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
