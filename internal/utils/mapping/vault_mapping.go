package mapping

import (
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/models"
)

// ToModelVault converts a domain Vault to a model Vault
func ToModelVault(d domain.Vault) models.Vault {
	return models.Vault{
		VaultID:       d.VaultID,
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		Name:          d.Name,
		IconTag:       d.IconTag,
		CurrentAmount: d.CurrentAmount,
		TargetAmount:  d.TargetAmount,
		Deadline:      d.Deadline,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVault converts a model Vault to a domain Vault
func ToDomainVault(m models.Vault) domain.Vault {
	return domain.Vault{
		VaultID:       m.VaultID,
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		Name:          m.Name,
		IconTag:       m.IconTag,
		CurrentAmount: m.CurrentAmount,
		TargetAmount:  m.TargetAmount,
		Deadline:      m.Deadline,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVaultSlice converts a slice of model Vaults to domain Vaults
func ToDomainVaultSlice(ms []models.Vault) []domain.Vault {
	ds := make([]domain.Vault, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVault(m)
	}
	return ds
}
