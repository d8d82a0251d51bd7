package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		VaultRepo:        newPgxVaultRepository(dbPool),
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		GamificationRepo: newPgxGamificationRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
