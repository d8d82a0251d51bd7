package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Institution: req.Institution,
		Name:        req.Name,
		Kind:        req.Kind,
		Balance:     req.InitialBalance,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("user_id", userID))
		return nil, err
	}

	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsByUser(ctx, userID)
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Institution != nil {
		account.Institution = *req.Institution
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	account.Touch(userID, time.Now())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	return nil
}
