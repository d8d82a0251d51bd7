package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedger  *MockLedgerRepository
	mockBudgets *MockBudgetRepository
	service     portssvc.ReportingSvcFacade
	ctx         context.Context
	userID      string
	refDate     time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockLedger = new(MockLedgerRepository)
	s.mockBudgets = new(MockBudgetRepository)
	s.service = services.NewReportingService(s.mockLedger, s.mockBudgets)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.refDate = time.Date(2026, time.July, 18, 0, 0, 0, 0, time.UTC)
}

func (s *ReportingServiceTestSuite) entry(t domain.TransactionType, amount int64, category string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          s.userID,
		Amount:          decimal.NewFromInt(amount),
		Category:        category,
		Type:            t,
		TransactionDate: date,
	}
}

func (s *ReportingServiceTestSuite) TestGetSummaryRejectsUnknownRange() {
	resp, err := s.service.GetSummary(s.ctx, s.userID, domain.PeriodRange("FORTNIGHTLY"), s.refDate)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(resp)
}

func (s *ReportingServiceTestSuite) TestGetSummaryMonthly() {
	var gotFilters portsrepo.LedgerFilters
	s.mockLedger.ListEntriesFn = func(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error) {
		gotFilters = filters
		return []domain.Transaction{
			s.entry(domain.Income, 3000, "Salary", s.refDate.AddDate(0, 0, -3)),
			s.entry(domain.Expense, 800, "Rent", s.refDate.AddDate(0, 0, -2)),
			s.entry(domain.Expense, 200, "Groceries", s.refDate.AddDate(0, 0, -1)),
		}, nil
	}

	resp, err := s.service.GetSummary(s.ctx, s.userID, domain.MonthlyRange, s.refDate)

	s.Require().NoError(err)
	s.True(gotFilters.From.Equal(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)), "snapshot is bounded to the calendar window")
	s.True(gotFilters.To.Equal(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	s.Equal("2026-07-01", resp.From)
	s.Equal("2026-08-01", resp.To)
	s.True(resp.TotalIncome.Equal(decimal.NewFromInt(3000)))
	s.True(resp.TotalExpense.Equal(decimal.NewFromInt(1000)))
	s.True(resp.Net.Equal(decimal.NewFromInt(2000)))
}

func (s *ReportingServiceTestSuite) TestGetCategoryBreakdownOrdersByTotal() {
	s.mockLedger.ListEntriesFn = func(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error) {
		return []domain.Transaction{
			s.entry(domain.Expense, 800, "Rent", s.refDate.AddDate(0, 0, -3)),
			s.entry(domain.Expense, 150, "Groceries", s.refDate.AddDate(0, 0, -2)),
			s.entry(domain.Expense, 250, "Groceries", s.refDate.AddDate(0, 0, -1)),
			s.entry(domain.Income, 3000, "Salary", s.refDate.AddDate(0, 0, -1)),
		}, nil
	}

	resp, err := s.service.GetCategoryBreakdown(s.ctx, s.userID, domain.MonthlyRange, s.refDate)

	s.Require().NoError(err)
	s.Require().Len(resp.Categories, 2, "income never appears in the expense breakdown")
	s.Equal("Rent", resp.Categories[0].Category)
	s.True(resp.Categories[0].Total.Equal(decimal.NewFromInt(800)))
	s.Equal("Groceries", resp.Categories[1].Category)
	s.True(resp.Categories[1].Total.Equal(decimal.NewFromInt(400)))
}

func (s *ReportingServiceTestSuite) TestGetPeriodComparisonSpansBothWindows() {
	var gotFilters portsrepo.LedgerFilters
	listCalls := 0
	s.mockLedger.ListEntriesFn = func(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error) {
		listCalls++
		gotFilters = filters
		return []domain.Transaction{
			s.entry(domain.Expense, 500, "Rent", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)),
			s.entry(domain.Expense, 700, "Rent", time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)),
		}, nil
	}

	resp, err := s.service.GetPeriodComparison(s.ctx, s.userID, domain.MonthlyRange, s.refDate)

	s.Require().NoError(err)
	s.Equal(1, listCalls, "both windows come from one snapshot")
	s.True(gotFilters.From.Equal(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)))
	s.True(gotFilters.To.Equal(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	s.True(resp.PreviousTotal.Equal(decimal.NewFromInt(500)))
	s.True(resp.CurrentTotal.Equal(decimal.NewFromInt(700)))
}

func (s *ReportingServiceTestSuite) TestGetBudgetStatus() {
	month := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	s.mockBudgets.ListBudgetsByMonthFn = func(ctx context.Context, userID string, m time.Time) ([]domain.Budget, error) {
		s.True(m.Equal(month), "month normalized to its first day")
		return []domain.Budget{
			{BudgetID: uuid.NewString(), UserID: userID, Category: "Groceries", Allocated: decimal.NewFromInt(500), Month: m},
			{BudgetID: uuid.NewString(), UserID: userID, Category: "Transport", Allocated: decimal.NewFromInt(200), Month: m},
		}, nil
	}
	s.mockLedger.ListEntriesFn = func(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error) {
		return []domain.Transaction{
			s.entry(domain.Expense, 450, "Groceries", s.refDate.AddDate(0, 0, -5)),
			s.entry(domain.Expense, 20, "Transport", s.refDate.AddDate(0, 0, -4)),
		}, nil
	}

	resp, err := s.service.GetBudgetStatus(s.ctx, s.userID, s.refDate)

	s.Require().NoError(err)
	s.Equal("2026-07", resp.Month)
	s.Require().Len(resp.Budgets, 2)

	groceries := resp.Budgets[0]
	s.Equal("Groceries", groceries.Category)
	s.True(groceries.Spent.Equal(decimal.NewFromInt(450)))
	s.True(groceries.Warning, "90% consumption crosses the warning threshold")

	transport := resp.Budgets[1]
	s.Equal("Transport", transport.Category)
	s.True(transport.Spent.Equal(decimal.NewFromInt(20)))
	s.False(transport.Warning)
}

func (s *ReportingServiceTestSuite) TestGetBudgetStatusWithNoSpending() {
	s.mockBudgets.ListBudgetsByMonthFn = func(ctx context.Context, userID string, m time.Time) ([]domain.Budget, error) {
		return []domain.Budget{
			{BudgetID: uuid.NewString(), UserID: userID, Category: "Eating Out", Allocated: decimal.NewFromInt(300), Month: m},
		}, nil
	}
	s.mockLedger.ListEntriesFn = func(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error) {
		return nil, nil
	}

	resp, err := s.service.GetBudgetStatus(s.ctx, s.userID, s.refDate)

	s.Require().NoError(err)
	s.Require().Len(resp.Budgets, 1)
	s.True(resp.Budgets[0].Spent.IsZero())
	s.True(resp.Budgets[0].Progress.IsZero())
	s.False(resp.Budgets[0].Warning)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
