package repositories

import (
	"context"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account owned by the user.
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts linked by the user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an account's mutable fields (name, institution).
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Ledger entries keep their account
	// reference for history; vaults under the account are removed with it.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
