package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecurrenceServiceTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerRepository
	sink       *MockNotificationSink
	service    portssvc.RecurrenceSvcFacade
	ctx        context.Context
	userID     string
	now        time.Time
}

func (s *RecurrenceServiceTestSuite) SetupTest() {
	s.mockLedger = new(MockLedgerRepository)
	s.sink = new(MockNotificationSink)
	s.service = services.NewRecurrenceService(s.mockLedger, s.sink)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.now = time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
}

func (s *RecurrenceServiceTestSuite) template(freq domain.RecurrenceFrequency, nextDue time.Time, t domain.TransactionType) domain.Transaction {
	accountID := uuid.NewString()
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          s.userID,
		Name:            "Rent",
		Amount:          decimal.NewFromInt(1200),
		Category:        "Housing",
		Type:            t,
		TransactionDate: nextDue.AddDate(0, -6, 0),
		AccountID:       &accountID,
		IsRecurring:     true,
		Frequency:       freq,
		NextDueDate:     &nextDue,
	}
}

func (s *RecurrenceServiceTestSuite) TestAdvanceSingleDueCycle() {
	due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tmpl := s.template(domain.Monthly, due, domain.Expense)

	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		s.Equal(s.userID, userID)
		return []domain.Transaction{tmpl}, nil
	}

	var spawned []domain.Transaction
	s.mockLedger.SpawnAndAdvanceFn = func(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error {
		spawned = append(spawned, leaf)
		s.Equal(tmpl.TransactionID, templateID)
		s.True(prevDue.Equal(due))
		s.True(nextDue.Equal(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
		s.True(balanceDelta.Equal(decimal.NewFromInt(-1200)), "expense leaf debits the account")
		return nil
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().NoError(err)
	s.Equal(1, resp.Created)
	s.Empty(resp.Failures)
	s.Require().Len(spawned, 1)

	leaf := spawned[0]
	s.False(leaf.IsRecurring)
	s.True(leaf.TransactionDate.Equal(due), "leaf carries the cycle's due date, not the run time")
	s.Require().NotNil(leaf.ParentTemplateID)
	s.Equal(tmpl.TransactionID, *leaf.ParentTemplateID)
	s.NotEqual(tmpl.TransactionID, leaf.TransactionID)
	s.Equal(tmpl.Amount, leaf.Amount)
	s.Equal(tmpl.Category, leaf.Category)
}

func (s *RecurrenceServiceTestSuite) TestAdvanceCatchesUpElapsedCycles() {
	due := s.now.AddDate(0, 0, -21)
	tmpl := s.template(domain.Weekly, due, domain.Income)

	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		return []domain.Transaction{tmpl}, nil
	}

	var leafDates []time.Time
	s.mockLedger.SpawnAndAdvanceFn = func(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error {
		leafDates = append(leafDates, leaf.TransactionDate)
		s.True(balanceDelta.Equal(decimal.NewFromInt(1200)), "income leaf credits the account")
		return nil
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().NoError(err)
	s.Equal(4, resp.Created, "21 days ago plus three weekly steps are all due")
	s.Require().Len(leafDates, 4)
	for i, d := range leafDates {
		s.True(d.Equal(due.AddDate(0, 0, 7*i)), "leaf %d backfills its own cycle", i)
	}
}

func (s *RecurrenceServiceTestSuite) TestAdvanceNothingDueIsIdempotent() {
	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		return nil, nil
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().NoError(err)
	s.Equal(0, resp.Created)
	s.Empty(resp.Failures)
	s.Empty(s.sink.Emitted, "no notification when nothing was created")
}

func (s *RecurrenceServiceTestSuite) TestAdvanceConcurrentRunnerStopsQuietly() {
	due := s.now.AddDate(0, 0, -1)
	tmpl := s.template(domain.Daily, due, domain.Expense)

	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		return []domain.Transaction{tmpl}, nil
	}
	s.mockLedger.SpawnAndAdvanceFn = func(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error {
		return apperrors.ErrConflict
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().NoError(err)
	s.Equal(0, resp.Created)
	s.Empty(resp.Failures, "losing the race is not a failure")
	s.Empty(s.sink.Emitted)
}

func (s *RecurrenceServiceTestSuite) TestAdvanceCollectsPerTemplateFailures() {
	goodDue := s.now.AddDate(0, 0, -1)
	good := s.template(domain.Daily, goodDue, domain.Expense)
	bad := s.template(domain.Daily, goodDue, domain.Expense)

	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		return []domain.Transaction{bad, good}, nil
	}

	storeErr := errors.New("connection reset")
	s.mockLedger.SpawnAndAdvanceFn = func(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error {
		if templateID == bad.TransactionID {
			return storeErr
		}
		return nil
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().NoError(err, "one bad template never aborts the batch")
	s.Equal(2, resp.Created, "the healthy template still advanced both its cycles")
	s.Require().Len(resp.Failures, 1)
	s.Equal(bad.TransactionID, resp.Failures[0].TemplateID)
	s.Contains(resp.Failures[0].Error, "connection reset")
}

func (s *RecurrenceServiceTestSuite) TestAdvanceTemplateWithoutSchedule() {
	tmpl := s.template(domain.Daily, s.now, domain.Expense)
	tmpl.NextDueDate = nil

	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		return []domain.Transaction{tmpl}, nil
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().NoError(err)
	s.Equal(0, resp.Created)
	s.Require().Len(resp.Failures, 1)
	s.Equal(tmpl.TransactionID, resp.Failures[0].TemplateID)
}

func (s *RecurrenceServiceTestSuite) TestAdvanceEmitsNotificationWithCount() {
	due := s.now.AddDate(0, 0, -2)
	tmpl := s.template(domain.Daily, due, domain.Expense)

	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		return []domain.Transaction{tmpl}, nil
	}
	s.mockLedger.SpawnAndAdvanceFn = func(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error {
		return nil
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().NoError(err)
	s.Equal(3, resp.Created)
	s.Require().Len(s.sink.Emitted, 1)
	s.Equal(domain.NotificationRecurringSpawned, s.sink.Emitted[0].Type)
	s.Equal(s.userID, s.sink.Emitted[0].UserID)
	s.Equal("3", s.sink.Emitted[0].Data["count"])
}

func (s *RecurrenceServiceTestSuite) TestAdvanceListFailurePropagates() {
	storeErr := errors.New("pool exhausted")
	s.mockLedger.ListDueTemplatesFn = func(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
		return nil, storeErr
	}

	resp, err := s.service.AdvanceDueTemplates(s.ctx, s.userID, s.now)

	s.Require().Error(err)
	s.ErrorIs(err, storeErr)
	s.Nil(resp)
}

func TestRecurrenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceServiceTestSuite))
}
