package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a ledger entry.
// When IsRecurring is set the record is a template: Frequency is required and
// NextDueDate defaults to TransactionDate when omitted.
type CreateTransactionRequest struct {
	Name            string                     `json:"name" binding:"required"`
	Amount          decimal.Decimal            `json:"amount" binding:"required"`
	Category        string                     `json:"category" binding:"required"`
	Type            domain.TransactionType     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	TransactionDate time.Time                  `json:"transactionDate" binding:"required"`
	AccountID       *string                    `json:"accountID"`
	PaymentMethod   *string                    `json:"paymentMethod"`
	IsRecurring     bool                       `json:"isRecurring"`
	Frequency       domain.RecurrenceFrequency `json:"frequency,omitempty" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	NextDueDate     *time.Time                 `json:"nextDueDate,omitempty"`
}

// TransactionResponse defines the data returned for a ledger record.
type TransactionResponse struct {
	TransactionID    string                     `json:"transactionID"`
	Name             string                     `json:"name"`
	Amount           decimal.Decimal            `json:"amount"`
	Category         string                     `json:"category"`
	Type             domain.TransactionType     `json:"type"`
	TransactionDate  time.Time                  `json:"transactionDate"`
	AccountID        *string                    `json:"accountID,omitempty"`
	PaymentMethod    *string                    `json:"paymentMethod,omitempty"`
	IsRecurring      bool                       `json:"isRecurring"`
	Frequency        domain.RecurrenceFrequency `json:"frequency,omitempty"`
	NextDueDate      *time.Time                 `json:"nextDueDate,omitempty"`
	ParentTemplateID *string                    `json:"parentTemplateID,omitempty"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		Name:             t.Name,
		Amount:           t.Amount,
		Category:         t.Category,
		Type:             t.Type,
		TransactionDate:  t.TransactionDate,
		AccountID:        t.AccountID,
		PaymentMethod:    t.PaymentMethod,
		IsRecurring:      t.IsRecurring,
		Frequency:        t.Frequency,
		NextDueDate:      t.NextDueDate,
		ParentTemplateID: t.ParentTemplateID,
		CreatedAt:        t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: out, NextToken: nextToken}
}
