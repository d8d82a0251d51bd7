package repositories

// RepositoryProvider bundles all repository facades for service wiring.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	AccountRepo      AccountRepositoryFacade
	VaultRepo        VaultRepositoryFacade
	LedgerRepo       LedgerRepositoryFacade
	BudgetRepo       BudgetRepositoryFacade
	GamificationRepo GamificationRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
