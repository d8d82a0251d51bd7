package repositories

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerFilters narrows ListEntries. Zero values mean "no filter".
type LedgerFilters struct {
	From     time.Time
	To       time.Time // Exclusive upper bound
	Type     domain.TransactionType
	Category string
}

// LedgerReader defines read operations for ledger entries. Templates are
// never returned by ListEntries; they are schedules, not financial events.
type LedgerReader interface {
	// FindTransactionByID retrieves any ledger record (leaf or template) by ID.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListEntries retrieves the user's leaf entries matching the filters,
	// newest first.
	ListEntries(ctx context.Context, userID string, filters LedgerFilters) ([]domain.Transaction, error)

	// ListEntriesPaginated retrieves leaf entries with token-based pagination.
	ListEntriesPaginated(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// CountEntriesByUser returns the number of leaf entries a user has.
	CountEntriesByUser(ctx context.Context, userID string) (int, error)
}

// LedgerWriter defines write operations for ledger entries.
type LedgerWriter interface {
	// SaveTransaction persists a record. When balanceDelta is non-zero and
	// the record references an account, the account balance is adjusted in
	// the same database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// DeleteTransaction removes a record, reversing balanceDelta against the
	// referenced account in the same database transaction.
	DeleteTransaction(ctx context.Context, userID, transactionID string, balanceDelta decimal.Decimal) error
}

// TemplateRepository defines operations on recurring templates.
type TemplateRepository interface {
	// ListDueTemplates retrieves the user's templates with nextDueDate <= now.
	ListDueTemplates(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error)

	// SpawnAndAdvance atomically inserts the spawned leaf entry, applies
	// balanceDelta to the leaf's account (when set), and moves the
	// template's schedule pointer from prevDue to nextDue. The advance is
	// guarded with an optimistic check on prevDue; if another writer already
	// advanced the template, apperrors.ErrConflict is returned and nothing is
	// written. A leaf must never be created without advancing the template,
	// or the cycle would be double-spawned on the next run.
	SpawnAndAdvance(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	TemplateRepository
}
