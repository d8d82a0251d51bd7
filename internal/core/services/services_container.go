package services

import (
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification first: gamification and recurrence emit through it.
	container.Notification = NewNotificationService(repos.NotificationRepo)

	container.Gamification = NewGamificationService(
		repos.GamificationRepo,
		repos.VaultRepo,
		repos.LedgerRepo,
		container.Notification,
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Vault = NewVaultService(repos.VaultRepo, repos.AccountRepo, container.Gamification)
	container.Transaction = NewTransactionService(repos.LedgerRepo, repos.AccountRepo, container.Gamification)
	container.Recurrence = NewRecurrenceService(repos.LedgerRepo, container.Notification)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Reporting = NewReportingService(repos.LedgerRepo, repos.BudgetRepo)

	return container
}
