package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVaultRequest defines the data needed to create a savings vault.
type CreateVaultRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	IconTag      string          `json:"iconTag"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     time.Time       `json:"deadline" binding:"required"`
}

// UpdateVaultRequest defines the fields allowed for editing a vault.
type UpdateVaultRequest struct {
	Name          *string          `json:"name"`
	IconTag       *string          `json:"iconTag"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"` // Explicit edit; the only way currentAmount may decrease
	Deadline      *time.Time       `json:"deadline"`
}

// VaultDepositRequest defines a deposit into a vault from its parent account.
type VaultDepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// VaultResponse defines the data returned for a vault.
type VaultResponse struct {
	VaultID       string          `json:"vaultID"`
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	IconTag       string          `json:"iconTag"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	Deadline      time.Time       `json:"deadline"`
	Progress      decimal.Decimal `json:"progress"`        // Clamped to [0,1] for display
	RawProgress   decimal.Decimal `json:"rawProgress"`     // Unclamped, for exceeded logic
	Completed     bool            `json:"completed"`
}

// ListVaultsResponse wraps the list of vaults.
type ListVaultsResponse struct {
	Vaults []VaultResponse `json:"vaults"`
}

// ToVaultResponse converts a domain.Vault to VaultResponse.
func ToVaultResponse(v *domain.Vault) VaultResponse {
	return VaultResponse{
		VaultID:       v.VaultID,
		AccountID:     v.AccountID,
		Name:          v.Name,
		IconTag:       v.IconTag,
		CurrentAmount: v.CurrentAmount,
		TargetAmount:  v.TargetAmount,
		Deadline:      v.Deadline,
		Progress:      v.ClampedProgress(),
		RawProgress:   v.Progress(),
		Completed:     v.IsCompleted(),
	}
}

// ToListVaultsResponse converts a slice of domain vaults.
func ToListVaultsResponse(vaults []domain.Vault) ListVaultsResponse {
	res := make([]VaultResponse, len(vaults))
	for i := range vaults {
		res[i] = ToVaultResponse(&vaults[i])
	}
	return ListVaultsResponse{Vaults: res}
}
