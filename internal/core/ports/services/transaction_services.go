package services

import (
	"context"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger data.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific ledger record.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated page of the user's leaf entries.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for ledger data.
type TransactionWriterSvc interface {
	// CreateTransaction persists a manual entry or a recurring template,
	// adjusting the referenced account balance for leaf entries.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a record, reversing its balance effect.
	// Deleting a template leaves already-spawned instances untouched.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
