package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/core/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type VaultServiceTestSuite struct {
	suite.Suite
	mockVaults   *MockVaultRepository
	mockAccounts *MockAccountRepository
	badges       *MockGamificationSvc
	service      portssvc.VaultSvcFacade
	ctx          context.Context
	userID       string
	accountID    string
}

func (s *VaultServiceTestSuite) SetupTest() {
	s.mockVaults = new(MockVaultRepository)
	s.mockAccounts = new(MockAccountRepository)
	s.badges = new(MockGamificationSvc)
	s.service = services.NewVaultService(s.mockVaults, s.mockAccounts, s.badges)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.accountID = uuid.NewString()

	s.mockAccounts.FindAccountByIDFn = func(ctx context.Context, userID, accountID string) (*domain.Account, error) {
		if userID == s.userID && accountID == s.accountID {
			return &domain.Account{AccountID: accountID, UserID: userID}, nil
		}
		return nil, apperrors.ErrNotFound
	}
}

func (s *VaultServiceTestSuite) createReq() dto.CreateVaultRequest {
	return dto.CreateVaultRequest{
		AccountID:    s.accountID,
		Name:         "New laptop",
		IconTag:      "laptop",
		TargetAmount: decimal.NewFromInt(5000),
		Deadline:     time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (s *VaultServiceTestSuite) TestCreateVault() {
	var saved domain.Vault
	s.mockVaults.SaveVaultFn = func(ctx context.Context, vault domain.Vault) error {
		saved = vault
		return nil
	}

	vault, err := s.service.CreateVault(s.ctx, s.userID, s.createReq())

	s.Require().NoError(err)
	s.Require().NotNil(vault)
	s.NotEmpty(saved.VaultID)
	s.Equal(s.accountID, saved.AccountID)
	s.True(saved.CurrentAmount.IsZero(), "a new vault starts empty")
	s.True(saved.TargetAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *VaultServiceTestSuite) TestCreateVaultRejectsNonPositiveTarget() {
	req := s.createReq()
	req.TargetAmount = decimal.Zero

	vault, err := s.service.CreateVault(s.ctx, s.userID, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(vault)
}

func (s *VaultServiceTestSuite) TestCreateVaultRejectsForeignAccount() {
	req := s.createReq()
	req.AccountID = uuid.NewString()

	vault, err := s.service.CreateVault(s.ctx, s.userID, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(vault)
}

func (s *VaultServiceTestSuite) TestDepositRejectsNonPositiveAmount() {
	vault, err := s.service.Deposit(s.ctx, s.userID, uuid.NewString(), dto.VaultDepositRequest{Amount: decimal.NewFromInt(-10)})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(vault)
}

func (s *VaultServiceTestSuite) TestDepositBelowTargetSkipsBadgeCheck() {
	vaultID := uuid.NewString()
	s.mockVaults.DepositFn = func(ctx context.Context, userID, vID string, amount decimal.Decimal, updatedBy string) (*domain.Vault, error) {
		return &domain.Vault{
			VaultID:       vID,
			AccountID:     s.accountID,
			UserID:        userID,
			CurrentAmount: decimal.NewFromInt(300),
			TargetAmount:  decimal.NewFromInt(5000),
		}, nil
	}

	vault, err := s.service.Deposit(s.ctx, s.userID, vaultID, dto.VaultDepositRequest{Amount: decimal.NewFromInt(300)})

	s.Require().NoError(err)
	s.False(vault.IsCompleted())
	s.Zero(s.badges.BadgeCheckCalls)
}

func (s *VaultServiceTestSuite) TestDepositCompletingVaultTriggersBadgeCheck() {
	vaultID := uuid.NewString()
	s.mockVaults.DepositFn = func(ctx context.Context, userID, vID string, amount decimal.Decimal, updatedBy string) (*domain.Vault, error) {
		return &domain.Vault{
			VaultID:       vID,
			AccountID:     s.accountID,
			UserID:        userID,
			CurrentAmount: decimal.NewFromInt(5000),
			TargetAmount:  decimal.NewFromInt(5000),
		}, nil
	}

	vault, err := s.service.Deposit(s.ctx, s.userID, vaultID, dto.VaultDepositRequest{Amount: decimal.NewFromInt(4700)})

	s.Require().NoError(err)
	s.True(vault.IsCompleted())
	s.Equal(1, s.badges.BadgeCheckCalls)
}

func (s *VaultServiceTestSuite) TestDepositInsufficientBalance() {
	s.mockVaults.DepositFn = func(ctx context.Context, userID, vID string, amount decimal.Decimal, updatedBy string) (*domain.Vault, error) {
		return nil, apperrors.ErrValidation
	}

	vault, err := s.service.Deposit(s.ctx, s.userID, uuid.NewString(), dto.VaultDepositRequest{Amount: decimal.NewFromInt(999999)})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(vault)
	s.Zero(s.badges.BadgeCheckCalls)
}

func (s *VaultServiceTestSuite) TestUpdateVaultAppliesPartialEdit() {
	vaultID := uuid.NewString()
	s.mockVaults.FindVaultByIDFn = func(ctx context.Context, userID, vID string) (*domain.Vault, error) {
		return &domain.Vault{
			VaultID:       vaultID,
			AccountID:     s.accountID,
			UserID:        userID,
			Name:          "New laptop",
			IconTag:       "laptop",
			CurrentAmount: decimal.NewFromInt(300),
			TargetAmount:  decimal.NewFromInt(5000),
		}, nil
	}

	var updated domain.Vault
	s.mockVaults.UpdateVaultFn = func(ctx context.Context, vault domain.Vault) error {
		updated = vault
		return nil
	}

	newName := "Gaming laptop"
	newCurrent := decimal.NewFromInt(150)
	vault, err := s.service.UpdateVault(s.ctx, s.userID, vaultID, dto.UpdateVaultRequest{
		Name:          &newName,
		CurrentAmount: &newCurrent,
	})

	s.Require().NoError(err)
	s.Require().NotNil(vault)
	s.Equal("Gaming laptop", updated.Name)
	s.Equal("laptop", updated.IconTag, "untouched fields keep their values")
	s.True(updated.CurrentAmount.Equal(newCurrent), "an explicit edit may lower the saved amount")
	s.True(updated.TargetAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *VaultServiceTestSuite) TestUpdateVaultRejectsNegativeCurrentAmount() {
	vaultID := uuid.NewString()
	s.mockVaults.FindVaultByIDFn = func(ctx context.Context, userID, vID string) (*domain.Vault, error) {
		return &domain.Vault{VaultID: vaultID, UserID: userID, TargetAmount: decimal.NewFromInt(5000)}, nil
	}

	negative := decimal.NewFromInt(-1)
	vault, err := s.service.UpdateVault(s.ctx, s.userID, vaultID, dto.UpdateVaultRequest{CurrentAmount: &negative})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(vault)
}

func (s *VaultServiceTestSuite) TestListVaultsFallsBackToUserScope() {
	byUserCalls := 0
	s.mockVaults.ListVaultsByUserFn = func(ctx context.Context, userID string) ([]domain.Vault, error) {
		byUserCalls++
		return []domain.Vault{{VaultID: uuid.NewString(), UserID: userID}}, nil
	}
	byAccountCalls := 0
	s.mockVaults.ListVaultsByAccountFn = func(ctx context.Context, userID, accountID string) ([]domain.Vault, error) {
		byAccountCalls++
		return nil, nil
	}

	vaults, err := s.service.ListVaults(s.ctx, s.userID, "")

	s.Require().NoError(err)
	s.Len(vaults, 1)
	s.Equal(1, byUserCalls)
	s.Zero(byAccountCalls)
}

func TestVaultServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VaultServiceTestSuite))
}
