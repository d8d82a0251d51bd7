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

type transactionService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	accountRepo  portsrepo.AccountReader
	gamification portssvc.GamificationSvcFacade
}

// NewTransactionService creates the ledger entry service. gamification may
// be nil; then ledger changes do not refresh challenges or badges inline.
func NewTransactionService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountReader, gamification portssvc.GamificationSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		ledgerRepo:   ledgerRepo,
		accountRepo:  accountRepo,
		gamification: gamification,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction persists a manual entry or a recurring template. Leaf
// entries referencing an account move its balance by the entry's signed
// amount in the same store transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.IsRecurring && !domain.ValidFrequency(req.Frequency) {
		return nil, fmt.Errorf("recurring entry requires a valid frequency: %w", apperrors.ErrValidation)
	}
	if req.PaymentMethod != nil && req.Type != domain.Expense {
		return nil, fmt.Errorf("payment method applies to expenses only: %w", apperrors.ErrValidation)
	}

	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, *req.AccountID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Name:            req.Name,
		Amount:          req.Amount.Abs(),
		Category:        req.Category,
		Type:            req.Type,
		TransactionDate: req.TransactionDate,
		AccountID:       req.AccountID,
		PaymentMethod:   req.PaymentMethod,
		IsRecurring:     req.IsRecurring,
		AuditFields:     domain.NewAuditFields(userID, now),
	}

	balanceDelta := decimal.Zero
	if req.IsRecurring {
		txn.Frequency = req.Frequency
		nextDue := req.TransactionDate
		if req.NextDueDate != nil {
			nextDue = *req.NextDueDate
		}
		txn.NextDueDate = &nextDue
	} else if txn.AccountID != nil {
		// Templates never move money; only the spawned entries do.
		balanceDelta = txn.SignedAmount()
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn, balanceDelta); err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.String("user_id", userID))
		return nil, err
	}

	if !txn.IsRecurring {
		s.refreshGamification(ctx, userID, now)
	}

	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	return s.ledgerRepo.FindTransactionByID(ctx, userID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.ledgerRepo.ListEntriesPaginated(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListTransactionsResponse(txns, nextToken)
	return &resp, nil
}

// DeleteTransaction removes a record and reverses its balance effect.
// Deleting a template leaves already-spawned entries untouched.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	balanceDelta := decimal.Zero
	if !txn.IsRecurring && txn.AccountID != nil {
		balanceDelta = txn.SignedAmount().Neg()
	}

	if err := s.ledgerRepo.DeleteTransaction(ctx, userID, transactionID, balanceDelta); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	if !txn.IsRecurring {
		s.refreshGamification(ctx, userID, time.Now())
	}

	return nil
}

// refreshGamification recomputes challenge progress and badge eligibility
// after a ledger change. Failures are logged, never surfaced to the caller.
func (s *transactionService) refreshGamification(ctx context.Context, userID string, now time.Time) {
	if s.gamification == nil {
		return
	}
	if err := s.gamification.RefreshChallenges(ctx, userID, now); err != nil {
		s.LogError(ctx, err, "Challenge refresh after ledger change failed", slog.String("user_id", userID))
	}
	if _, err := s.gamification.CheckBadgeEligibility(ctx, userID); err != nil {
		s.LogError(ctx, err, "Badge check after ledger change failed", slog.String("user_id", userID))
	}
}
