package services_test

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository (based on LedgerRepositoryFacade usage) ---
type MockLedgerRepository struct {
	mock.Mock
	FindTransactionByIDFn  func(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListEntriesFn          func(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error)
	ListEntriesPaginatedFn func(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
	CountEntriesByUserFn   func(ctx context.Context, userID string) (int, error)
	SaveTransactionFn      func(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error
	DeleteTransactionFn    func(ctx context.Context, userID, transactionID string, balanceDelta decimal.Decimal) error
	ListDueTemplatesFn     func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error)
	SpawnAndAdvanceFn      func(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error
}

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	if m.FindTransactionByIDFn != nil {
		return m.FindTransactionByIDFn(ctx, userID, transactionID)
	}
	args := m.Called(ctx, userID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error) {
	if m.ListEntriesFn != nil {
		return m.ListEntriesFn(ctx, userID, filters)
	}
	args := m.Called(ctx, userID, filters)
	var entries []domain.Transaction
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Transaction)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesPaginated(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if m.ListEntriesPaginatedFn != nil {
		return m.ListEntriesPaginatedFn(ctx, userID, limit, nextToken)
	}
	args := m.Called(ctx, userID, limit, nextToken)
	var entries []domain.Transaction
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) CountEntriesByUser(ctx context.Context, userID string) (int, error) {
	if m.CountEntriesByUserFn != nil {
		return m.CountEntriesByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn, balanceDelta)
	}
	args := m.Called(ctx, txn, balanceDelta)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteTransaction(ctx context.Context, userID, transactionID string, balanceDelta decimal.Decimal) error {
	if m.DeleteTransactionFn != nil {
		return m.DeleteTransactionFn(ctx, userID, transactionID, balanceDelta)
	}
	args := m.Called(ctx, userID, transactionID, balanceDelta)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListDueTemplates(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
	if m.ListDueTemplatesFn != nil {
		return m.ListDueTemplatesFn(ctx, userID, now)
	}
	args := m.Called(ctx, userID, now)
	var templates []domain.Transaction
	if args.Get(0) != nil {
		templates = args.Get(0).([]domain.Transaction)
	}
	return templates, args.Error(1)
}

func (m *MockLedgerRepository) SpawnAndAdvance(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error {
	if m.SpawnAndAdvanceFn != nil {
		return m.SpawnAndAdvanceFn(ctx, leaf, balanceDelta, templateID, prevDue, nextDue)
	}
	args := m.Called(ctx, leaf, balanceDelta, templateID, prevDue, nextDue)
	return args.Error(0)
}

// --- Mock GamificationRepository (based on GamificationRepositoryFacade usage) ---
type MockGamificationRepository struct {
	mock.Mock
	ListBadgeCatalogFn        func(ctx context.Context) ([]domain.Badge, error)
	ListAwardedBadgesFn       func(ctx context.Context, userID string) ([]domain.AwardedBadge, error)
	AwardBadgeFn              func(ctx context.Context, userID, badgeID string, awardedAt time.Time) (bool, error)
	FindChallengeByIDFn       func(ctx context.Context, userID, challengeID string) (*domain.Challenge, error)
	ListChallengesByUserFn    func(ctx context.Context, userID string) ([]domain.Challenge, error)
	ListActiveChallengesFn    func(ctx context.Context, userID string) ([]domain.Challenge, error)
	SaveChallengeFn           func(ctx context.Context, challenge domain.Challenge) error
	UpdateChallengeProgressFn func(ctx context.Context, challenge domain.Challenge) error
	GetGamificationStateFn    func(ctx context.Context, userID string) (*domain.GamificationState, error)
	SaveGamificationStateFn   func(ctx context.Context, state domain.GamificationState) error
}

func (m *MockGamificationRepository) ListBadgeCatalog(ctx context.Context) ([]domain.Badge, error) {
	if m.ListBadgeCatalogFn != nil {
		return m.ListBadgeCatalogFn(ctx)
	}
	args := m.Called(ctx)
	var badges []domain.Badge
	if args.Get(0) != nil {
		badges = args.Get(0).([]domain.Badge)
	}
	return badges, args.Error(1)
}

func (m *MockGamificationRepository) ListAwardedBadges(ctx context.Context, userID string) ([]domain.AwardedBadge, error) {
	if m.ListAwardedBadgesFn != nil {
		return m.ListAwardedBadgesFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var awarded []domain.AwardedBadge
	if args.Get(0) != nil {
		awarded = args.Get(0).([]domain.AwardedBadge)
	}
	return awarded, args.Error(1)
}

func (m *MockGamificationRepository) AwardBadge(ctx context.Context, userID, badgeID string, awardedAt time.Time) (bool, error) {
	if m.AwardBadgeFn != nil {
		return m.AwardBadgeFn(ctx, userID, badgeID, awardedAt)
	}
	args := m.Called(ctx, userID, badgeID, awardedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockGamificationRepository) FindChallengeByID(ctx context.Context, userID, challengeID string) (*domain.Challenge, error) {
	if m.FindChallengeByIDFn != nil {
		return m.FindChallengeByIDFn(ctx, userID, challengeID)
	}
	args := m.Called(ctx, userID, challengeID)
	var c *domain.Challenge
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Challenge)
	}
	return c, args.Error(1)
}

func (m *MockGamificationRepository) ListChallengesByUser(ctx context.Context, userID string) ([]domain.Challenge, error) {
	if m.ListChallengesByUserFn != nil {
		return m.ListChallengesByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var challenges []domain.Challenge
	if args.Get(0) != nil {
		challenges = args.Get(0).([]domain.Challenge)
	}
	return challenges, args.Error(1)
}

func (m *MockGamificationRepository) ListActiveChallenges(ctx context.Context, userID string) ([]domain.Challenge, error) {
	if m.ListActiveChallengesFn != nil {
		return m.ListActiveChallengesFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var challenges []domain.Challenge
	if args.Get(0) != nil {
		challenges = args.Get(0).([]domain.Challenge)
	}
	return challenges, args.Error(1)
}

func (m *MockGamificationRepository) SaveChallenge(ctx context.Context, challenge domain.Challenge) error {
	if m.SaveChallengeFn != nil {
		return m.SaveChallengeFn(ctx, challenge)
	}
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockGamificationRepository) UpdateChallengeProgress(ctx context.Context, challenge domain.Challenge) error {
	if m.UpdateChallengeProgressFn != nil {
		return m.UpdateChallengeProgressFn(ctx, challenge)
	}
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockGamificationRepository) GetGamificationState(ctx context.Context, userID string) (*domain.GamificationState, error) {
	if m.GetGamificationStateFn != nil {
		return m.GetGamificationStateFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var state *domain.GamificationState
	if args.Get(0) != nil {
		state = args.Get(0).(*domain.GamificationState)
	}
	return state, args.Error(1)
}

func (m *MockGamificationRepository) SaveGamificationState(ctx context.Context, state domain.GamificationState) error {
	if m.SaveGamificationStateFn != nil {
		return m.SaveGamificationStateFn(ctx, state)
	}
	args := m.Called(ctx, state)
	return args.Error(0)
}

// --- Mock VaultRepository (based on VaultRepositoryFacade usage) ---
type MockVaultRepository struct {
	mock.Mock
	FindVaultByIDFn       func(ctx context.Context, userID, vaultID string) (*domain.Vault, error)
	ListVaultsByAccountFn func(ctx context.Context, userID, accountID string) ([]domain.Vault, error)
	ListVaultsByUserFn    func(ctx context.Context, userID string) ([]domain.Vault, error)
	CountVaultsByUserFn   func(ctx context.Context, userID string) (int, int, error)
	SaveVaultFn           func(ctx context.Context, vault domain.Vault) error
	UpdateVaultFn         func(ctx context.Context, vault domain.Vault) error
	DepositFn             func(ctx context.Context, userID, vaultID string, amount decimal.Decimal, updatedBy string) (*domain.Vault, error)
	DeleteVaultFn         func(ctx context.Context, userID, vaultID string) error
}

func (m *MockVaultRepository) FindVaultByID(ctx context.Context, userID, vaultID string) (*domain.Vault, error) {
	if m.FindVaultByIDFn != nil {
		return m.FindVaultByIDFn(ctx, userID, vaultID)
	}
	args := m.Called(ctx, userID, vaultID)
	var vault *domain.Vault
	if args.Get(0) != nil {
		vault = args.Get(0).(*domain.Vault)
	}
	return vault, args.Error(1)
}

func (m *MockVaultRepository) ListVaultsByAccount(ctx context.Context, userID, accountID string) ([]domain.Vault, error) {
	if m.ListVaultsByAccountFn != nil {
		return m.ListVaultsByAccountFn(ctx, userID, accountID)
	}
	args := m.Called(ctx, userID, accountID)
	var vaults []domain.Vault
	if args.Get(0) != nil {
		vaults = args.Get(0).([]domain.Vault)
	}
	return vaults, args.Error(1)
}

func (m *MockVaultRepository) ListVaultsByUser(ctx context.Context, userID string) ([]domain.Vault, error) {
	if m.ListVaultsByUserFn != nil {
		return m.ListVaultsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var vaults []domain.Vault
	if args.Get(0) != nil {
		vaults = args.Get(0).([]domain.Vault)
	}
	return vaults, args.Error(1)
}

func (m *MockVaultRepository) CountVaultsByUser(ctx context.Context, userID string) (int, int, error) {
	if m.CountVaultsByUserFn != nil {
		return m.CountVaultsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockVaultRepository) SaveVault(ctx context.Context, vault domain.Vault) error {
	if m.SaveVaultFn != nil {
		return m.SaveVaultFn(ctx, vault)
	}
	args := m.Called(ctx, vault)
	return args.Error(0)
}

func (m *MockVaultRepository) UpdateVault(ctx context.Context, vault domain.Vault) error {
	if m.UpdateVaultFn != nil {
		return m.UpdateVaultFn(ctx, vault)
	}
	args := m.Called(ctx, vault)
	return args.Error(0)
}

func (m *MockVaultRepository) Deposit(ctx context.Context, userID, vaultID string, amount decimal.Decimal, updatedBy string) (*domain.Vault, error) {
	if m.DepositFn != nil {
		return m.DepositFn(ctx, userID, vaultID, amount, updatedBy)
	}
	args := m.Called(ctx, userID, vaultID, amount, updatedBy)
	var vault *domain.Vault
	if args.Get(0) != nil {
		vault = args.Get(0).(*domain.Vault)
	}
	return vault, args.Error(1)
}

func (m *MockVaultRepository) DeleteVault(ctx context.Context, userID, vaultID string) error {
	if m.DeleteVaultFn != nil {
		return m.DeleteVaultFn(ctx, userID, vaultID)
	}
	args := m.Called(ctx, userID, vaultID)
	return args.Error(0)
}

// --- Mock AccountRepository (reader side only; services under test never write) ---
type MockAccountRepository struct {
	mock.Mock
	FindAccountByIDFn    func(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccountsByUserFn func(ctx context.Context, userID string) ([]domain.Account, error)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	if m.FindAccountByIDFn != nil {
		return m.FindAccountByIDFn(ctx, userID, accountID)
	}
	args := m.Called(ctx, userID, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	if m.ListAccountsByUserFn != nil {
		return m.ListAccountsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

// --- Mock BudgetRepository (reader side only) ---
type MockBudgetRepository struct {
	mock.Mock
	FindBudgetByIDFn     func(ctx context.Context, userID, budgetID string) (*domain.Budget, error)
	ListBudgetsByMonthFn func(ctx context.Context, userID string, month time.Time) ([]domain.Budget, error)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	if m.FindBudgetByIDFn != nil {
		return m.FindBudgetByIDFn(ctx, userID, budgetID)
	}
	args := m.Called(ctx, userID, budgetID)
	var budget *domain.Budget
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.Budget)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByMonth(ctx context.Context, userID string, month time.Time) ([]domain.Budget, error) {
	if m.ListBudgetsByMonthFn != nil {
		return m.ListBudgetsByMonthFn(ctx, userID, month)
	}
	args := m.Called(ctx, userID, month)
	var budgets []domain.Budget
	if args.Get(0) != nil {
		budgets = args.Get(0).([]domain.Budget)
	}
	return budgets, args.Error(1)
}

// emittedNotification captures one Emit call for assertions.
type emittedNotification struct {
	UserID  string
	Type    domain.NotificationType
	Title   string
	Message string
	Data    map[string]string
}

// MockNotificationSink records emitted notifications in order.
type MockNotificationSink struct {
	Emitted []emittedNotification
}

func (m *MockNotificationSink) Emit(ctx context.Context, userID string, t domain.NotificationType, title, message string, data map[string]string) {
	m.Emitted = append(m.Emitted, emittedNotification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		Data:    data,
	})
}

// MockGamificationSvc stubs the gamification facade for services that
// trigger refreshes as a side effect.
type MockGamificationSvc struct {
	RefreshCalls    int
	BadgeCheckCalls int
	NewBadges       []string
}

func (m *MockGamificationSvc) RecordLogin(ctx context.Context, userID string, today time.Time) (*dto.RecordLoginResponse, error) {
	return &dto.RecordLoginResponse{}, nil
}

func (m *MockGamificationSvc) GetStreak(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	return &dto.StreakResponse{}, nil
}

func (m *MockGamificationSvc) ListBadges(ctx context.Context, userID string) (*dto.ListBadgesResponse, error) {
	return &dto.ListBadgesResponse{}, nil
}

func (m *MockGamificationSvc) CheckBadgeEligibility(ctx context.Context, userID string) ([]string, error) {
	m.BadgeCheckCalls++
	return m.NewBadges, nil
}

func (m *MockGamificationSvc) ActivateChallenge(ctx context.Context, userID string, req dto.ActivateChallengeRequest, now time.Time) (*domain.Challenge, error) {
	return nil, nil
}

func (m *MockGamificationSvc) ListChallenges(ctx context.Context, userID string) (*dto.ListChallengesResponse, error) {
	return &dto.ListChallengesResponse{}, nil
}

func (m *MockGamificationSvc) RefreshChallenges(ctx context.Context, userID string, now time.Time) error {
	m.RefreshCalls++
	return nil
}
