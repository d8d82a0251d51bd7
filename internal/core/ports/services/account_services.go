package services

import (
	"context"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// AccountSvcFacade manages linked bank and mobile-money accounts.
type AccountSvcFacade interface {
	// CreateAccount links a new account for the user.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a specific account owned by the user.
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all of the user's accounts.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// UpdateAccount updates an account's display fields.
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount unlinks an account.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// VaultSvcFacade manages savings vaults nested under accounts.
type VaultSvcFacade interface {
	// CreateVault creates a vault under one of the user's accounts.
	CreateVault(ctx context.Context, userID string, req dto.CreateVaultRequest) (*domain.Vault, error)

	// ListVaults retrieves the vaults under an account, or all of the
	// user's vaults when accountID is empty.
	ListVaults(ctx context.Context, userID, accountID string) ([]domain.Vault, error)

	// Deposit moves money from the parent account into the vault.
	Deposit(ctx context.Context, userID, vaultID string, req dto.VaultDepositRequest) (*domain.Vault, error)

	// UpdateVault edits a vault's fields.
	UpdateVault(ctx context.Context, userID, vaultID string, req dto.UpdateVaultRequest) (*domain.Vault, error)

	// DeleteVault removes a vault independently of its parent account.
	DeleteVault(ctx context.Context, userID, vaultID string) error
}
