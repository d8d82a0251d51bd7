package repositories

import (
	"context"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VaultReader defines read operations for savings vaults.
type VaultReader interface {
	// FindVaultByID retrieves a specific vault owned by the user.
	FindVaultByID(ctx context.Context, userID, vaultID string) (*domain.Vault, error)

	// ListVaultsByAccount retrieves the vaults nested under an account.
	ListVaultsByAccount(ctx context.Context, userID, accountID string) ([]domain.Vault, error)

	// ListVaultsByUser retrieves all of the user's vaults across accounts.
	ListVaultsByUser(ctx context.Context, userID string) ([]domain.Vault, error)

	// CountVaultsByUser returns (total, completed) vault counts for the user.
	CountVaultsByUser(ctx context.Context, userID string) (int, int, error)
}

// VaultWriter defines write operations for savings vaults.
type VaultWriter interface {
	// SaveVault persists a new vault.
	SaveVault(ctx context.Context, vault domain.Vault) error

	// UpdateVault updates a vault's name, icon, current amount, target and
	// deadline. Unlike Deposit it never touches the parent account balance.
	UpdateVault(ctx context.Context, vault domain.Vault) error

	// Deposit atomically moves amount from the parent account's balance into
	// the vault's current amount. Fails with apperrors.ErrValidation if the
	// account balance would go negative.
	Deposit(ctx context.Context, userID, vaultID string, amount decimal.Decimal, updatedBy string) (*domain.Vault, error)

	// DeleteVault removes a vault independently of its parent account.
	DeleteVault(ctx context.Context, userID, vaultID string) error
}

// VaultRepositoryFacade combines all vault repository interfaces.
type VaultRepositoryFacade interface {
	VaultReader
	VaultWriter
}
