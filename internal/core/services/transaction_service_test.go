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

type TransactionServiceTestSuite struct {
	suite.Suite
	mockLedger   *MockLedgerRepository
	mockAccounts *MockAccountRepository
	gamification *MockGamificationSvc
	service      portssvc.TransactionSvcFacade
	ctx          context.Context
	userID       string
	accountID    string
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockLedger = new(MockLedgerRepository)
	s.mockAccounts = new(MockAccountRepository)
	s.gamification = new(MockGamificationSvc)
	s.service = services.NewTransactionService(s.mockLedger, s.mockAccounts, s.gamification)
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

func (s *TransactionServiceTestSuite) createReq() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Name:            "Groceries",
		Amount:          decimal.NewFromInt(250),
		Category:        "Groceries",
		Type:            domain.Expense,
		TransactionDate: time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
	}
}

func (s *TransactionServiceTestSuite) TestCreateLeafWithAccountMovesBalance() {
	req := s.createReq()
	req.AccountID = &s.accountID

	var savedDelta decimal.Decimal
	var savedTxn domain.Transaction
	s.mockLedger.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
		savedTxn = txn
		savedDelta = balanceDelta
		return nil
	}

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.True(savedDelta.Equal(decimal.NewFromInt(-250)), "expense debits the account")
	s.False(savedTxn.IsRecurring)
	s.Nil(savedTxn.NextDueDate)
	s.Equal(s.userID, savedTxn.UserID)
	s.Equal(1, s.gamification.RefreshCalls, "a leaf entry refreshes challenge progress")
	s.Equal(1, s.gamification.BadgeCheckCalls)
}

func (s *TransactionServiceTestSuite) TestCreateLeafWithoutAccountHasNoBalanceEffect() {
	req := s.createReq()

	var savedDelta decimal.Decimal
	s.mockLedger.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
		savedDelta = balanceDelta
		return nil
	}

	_, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.True(savedDelta.IsZero())
}

func (s *TransactionServiceTestSuite) TestCreateTemplateDefaultsScheduleToDate() {
	req := s.createReq()
	req.AccountID = &s.accountID
	req.IsRecurring = true
	req.Frequency = domain.Monthly

	var savedTxn domain.Transaction
	var savedDelta decimal.Decimal
	s.mockLedger.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
		savedTxn = txn
		savedDelta = balanceDelta
		return nil
	}

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.True(txn.IsTemplate())
	s.Require().NotNil(savedTxn.NextDueDate)
	s.True(savedTxn.NextDueDate.Equal(req.TransactionDate), "first due date defaults to the entry date")
	s.True(savedDelta.IsZero(), "templates never move money")
	s.Zero(s.gamification.RefreshCalls, "templates are not financial events")
}

func (s *TransactionServiceTestSuite) TestCreateTemplateHonorsExplicitNextDue() {
	req := s.createReq()
	req.IsRecurring = true
	req.Frequency = domain.Weekly
	nextDue := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	req.NextDueDate = &nextDue

	var savedTxn domain.Transaction
	s.mockLedger.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
		savedTxn = txn
		return nil
	}

	_, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Require().NotNil(savedTxn.NextDueDate)
	s.True(savedTxn.NextDueDate.Equal(nextDue))
}

func (s *TransactionServiceTestSuite) TestCreateRejectsNonPositiveAmount() {
	req := s.createReq()
	req.Amount = decimal.Zero

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(txn)
}

func (s *TransactionServiceTestSuite) TestCreateRecurringRequiresFrequency() {
	req := s.createReq()
	req.IsRecurring = true

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(txn)
}

func (s *TransactionServiceTestSuite) TestCreateRejectsPaymentMethodOnIncome() {
	req := s.createReq()
	req.Type = domain.Income
	method := "Card"
	req.PaymentMethod = &method

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(txn)
}

func (s *TransactionServiceTestSuite) TestCreateRejectsForeignAccount() {
	req := s.createReq()
	otherAccount := uuid.NewString()
	req.AccountID = &otherAccount

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(txn)
}

func (s *TransactionServiceTestSuite) TestDeleteLeafReversesBalance() {
	txnID := uuid.NewString()
	s.mockLedger.FindTransactionByIDFn = func(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
		return &domain.Transaction{
			TransactionID: txnID,
			UserID:        s.userID,
			Amount:        decimal.NewFromInt(250),
			Type:          domain.Expense,
			AccountID:     &s.accountID,
		}, nil
	}

	var deletedDelta decimal.Decimal
	s.mockLedger.DeleteTransactionFn = func(ctx context.Context, userID, transactionID string, balanceDelta decimal.Decimal) error {
		deletedDelta = balanceDelta
		return nil
	}

	err := s.service.DeleteTransaction(s.ctx, s.userID, txnID)

	s.Require().NoError(err)
	s.True(deletedDelta.Equal(decimal.NewFromInt(250)), "deleting an expense credits the money back")
	s.Equal(1, s.gamification.RefreshCalls)
}

func (s *TransactionServiceTestSuite) TestDeleteTemplateHasNoBalanceEffect() {
	txnID := uuid.NewString()
	nextDue := time.Now()
	s.mockLedger.FindTransactionByIDFn = func(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
		return &domain.Transaction{
			TransactionID: txnID,
			UserID:        s.userID,
			Amount:        decimal.NewFromInt(1200),
			Type:          domain.Expense,
			AccountID:     &s.accountID,
			IsRecurring:   true,
			Frequency:     domain.Monthly,
			NextDueDate:   &nextDue,
		}, nil
	}

	var deletedDelta decimal.Decimal
	s.mockLedger.DeleteTransactionFn = func(ctx context.Context, userID, transactionID string, balanceDelta decimal.Decimal) error {
		deletedDelta = balanceDelta
		return nil
	}

	err := s.service.DeleteTransaction(s.ctx, s.userID, txnID)

	s.Require().NoError(err)
	s.True(deletedDelta.IsZero())
	s.Zero(s.gamification.RefreshCalls)
}

func (s *TransactionServiceTestSuite) TestDeleteMissingTransaction() {
	s.mockLedger.FindTransactionByIDFn = func(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
		return nil, apperrors.ErrNotFound
	}

	err := s.service.DeleteTransaction(s.ctx, s.userID, uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestListTransactionsPassesPageThrough() {
	token := "b3BhcXVl"
	s.mockLedger.ListEntriesPaginatedFn = func(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
		s.Equal(20, limit)
		s.Nil(nextToken)
		return []domain.Transaction{{TransactionID: uuid.NewString(), UserID: userID}}, &token, nil
	}

	resp, err := s.service.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{Limit: 20})

	s.Require().NoError(err)
	s.Len(resp.Transactions, 1)
	s.Require().NotNil(resp.NextToken)
	s.Equal(token, *resp.NextToken)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
