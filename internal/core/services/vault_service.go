package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/shopspring/decimal"
)

type vaultService struct {
	BaseService
	vaultRepo    portsrepo.VaultRepositoryFacade
	accountRepo  portsrepo.AccountReader
	badgeChecker portssvc.BadgeSvc
}

// NewVaultService creates the vault service. badgeChecker may be nil, in
// which case completing a vault awards nothing until the next explicit
// eligibility check.
func NewVaultService(vaultRepo portsrepo.VaultRepositoryFacade, accountRepo portsrepo.AccountReader, badgeChecker portssvc.BadgeSvc) portssvc.VaultSvcFacade {
	return &vaultService{
		vaultRepo:    vaultRepo,
		accountRepo:  accountRepo,
		badgeChecker: badgeChecker,
	}
}

var _ portssvc.VaultSvcFacade = (*vaultService)(nil)

func (s *vaultService) CreateVault(ctx context.Context, userID string, req dto.CreateVaultRequest) (*domain.Vault, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("target amount must be positive: %w", apperrors.ErrValidation)
	}

	// The parent account must exist and belong to the user.
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}

	now := time.Now()
	vault := domain.Vault{
		VaultID:       uuid.NewString(),
		AccountID:     req.AccountID,
		UserID:        userID,
		Name:          req.Name,
		IconTag:       req.IconTag,
		CurrentAmount: decimal.Zero,
		TargetAmount:  req.TargetAmount,
		Deadline:      req.Deadline,
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	if err := s.vaultRepo.SaveVault(ctx, vault); err != nil {
		s.LogError(ctx, err, "Failed to create vault", slog.String("user_id", userID))
		return nil, err
	}

	return &vault, nil
}

func (s *vaultService) ListVaults(ctx context.Context, userID, accountID string) ([]domain.Vault, error) {
	if accountID == "" {
		return s.vaultRepo.ListVaultsByUser(ctx, userID)
	}
	return s.vaultRepo.ListVaultsByAccount(ctx, userID, accountID)
}

func (s *vaultService) Deposit(ctx context.Context, userID, vaultID string, req dto.VaultDepositRequest) (*domain.Vault, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrValidation)
	}

	vault, err := s.vaultRepo.Deposit(ctx, userID, vaultID, req.Amount, userID)
	if err != nil {
		return nil, err
	}

	// A deposit that completes the vault may unlock a badge.
	if vault.IsCompleted() && s.badgeChecker != nil {
		if _, err := s.badgeChecker.CheckBadgeEligibility(ctx, userID); err != nil {
			s.LogError(ctx, err, "Badge check after vault completion failed", slog.String("vault_id", vaultID))
		}
	}

	return vault, nil
}

func (s *vaultService) UpdateVault(ctx context.Context, userID, vaultID string, req dto.UpdateVaultRequest) (*domain.Vault, error) {
	vault, err := s.vaultRepo.FindVaultByID(ctx, userID, vaultID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vault.Name = *req.Name
	}
	if req.IconTag != nil {
		vault.IconTag = *req.IconTag
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("target amount must be positive: %w", apperrors.ErrValidation)
		}
		vault.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if req.CurrentAmount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("current amount cannot be negative: %w", apperrors.ErrValidation)
		}
		vault.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		vault.Deadline = *req.Deadline
	}
	vault.Touch(userID, time.Now())

	// An explicit current-amount edit goes through the plain update on
	// purpose; unlike Deposit it does not touch any account balance.
	if err := s.vaultRepo.UpdateVault(ctx, *vault); err != nil {
		s.LogError(ctx, err, "Failed to update vault", slog.String("vault_id", vaultID))
		return nil, err
	}

	return vault, nil
}

func (s *vaultService) DeleteVault(ctx context.Context, userID, vaultID string) error {
	if err := s.vaultRepo.DeleteVault(ctx, userID, vaultID); err != nil {
		s.LogError(ctx, err, "Failed to delete vault", slog.String("vault_id", vaultID))
		return err
	}
	return nil
}
