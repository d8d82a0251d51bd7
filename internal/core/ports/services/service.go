package services

// ServiceContainer holds instances of all application services. It is the
// entry point for accessing service functionality from the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Account      AccountSvcFacade
	Vault        VaultSvcFacade
	Transaction  TransactionSvcFacade
	Recurrence   RecurrenceSvcFacade
	Budget       BudgetSvcFacade
	Reporting    ReportingSvcFacade
	Gamification GamificationSvcFacade
	Notification NotificationSvcFacade
}
