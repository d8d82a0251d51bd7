package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_backend/internal/models"
	"github.com/pocketfin/pocketfin_backend/internal/utils/mapping"
	"github.com/pocketfin/pocketfin_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository for ledger entries and
// recurring templates.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const transactionColumns = `transaction_id, user_id, name, amount, category, transaction_type, transaction_date, account_id, payment_method, is_recurring, frequency, next_due_date, parent_template_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.Category,
		&m.TransactionType,
		&m.TransactionDate,
		&m.AccountID,
		&m.PaymentMethod,
		&m.IsRecurring,
		&m.Frequency,
		&m.NextDueDate,
		&m.ParentTemplateID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return ms, nil
}

func insertTransactionTx(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Name,
		m.Amount,
		m.Category,
		m.TransactionType,
		m.TransactionDate,
		m.AccountID,
		m.PaymentMethod,
		m.IsRecurring,
		m.Frequency,
		m.NextDueDate,
		m.ParentTemplateID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return err
}

// SaveTransaction persists the record and, when it references an account,
// applies balanceDelta to that account's balance in the same database
// transaction.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransactionTx(ctx, tx, m); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	if m.AccountID != nil && !balanceDelta.IsZero() {
		if err := applyBalanceDeltaTx(ctx, tx, txn.UserID, *m.AccountID, balanceDelta, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the record and reverses balanceDelta against the
// referenced account in the same database transaction.
func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, userID, transactionID string, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var accountID *string
	err = tx.QueryRow(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2 RETURNING account_id;`, transactionID, userID).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	if accountID != nil && !balanceDelta.IsZero() {
		if err := applyBalanceDeltaTx(ctx, tx, userID, *accountID, balanceDelta, userID, time.Now()); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func applyBalanceDeltaTx(ctx context.Context, tx pgx.Tx, userID, accountID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE accounts
		SET balance = balance + $1, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $4 AND user_id = $5;
	`, delta, updatedAt, updatedBy, accountID, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListEntries returns leaf entries only. Templates carry a schedule, not a
// financial event, so they are excluded from every listing.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, userID string, filters portsrepo.LedgerFilters) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND is_recurring = FALSE`
	args := []any{userID}

	if !filters.From.IsZero() {
		args = append(args, filters.From)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if !filters.To.IsZero() {
		args = append(args, filters.To)
		query += fmt.Sprintf(" AND transaction_date < $%d", len(args))
	}
	if filters.Type != "" {
		args = append(args, string(filters.Type))
		query += fmt.Sprintf(" AND transaction_type = $%d", len(args))
	}
	if filters.Category != "" {
		args = append(args, filters.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY transaction_date DESC, created_at DESC;"

	ms, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListEntriesPaginated pages through leaf entries with an opaque keyset
// cursor over (transaction_date, created_at).
func (r *PgxLedgerRepository) ListEntriesPaginated(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND is_recurring = FALSE`
	args := []any{userID}

	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, txnDate, createdAt)
		query += fmt.Sprintf(" AND (transaction_date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;", len(args))

	ms, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(ms), token, nil
}

func (r *PgxLedgerRepository) CountEntriesByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND is_recurring = FALSE;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (r *PgxLedgerRepository) ListDueTemplates(ctx context.Context, userID string, now time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND is_recurring = TRUE AND next_due_date IS NOT NULL AND next_due_date <= $2
		ORDER BY next_due_date ASC;
	`
	ms, err := r.queryTransactions(ctx, query, userID, now)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// SpawnAndAdvance inserts the spawned leaf, applies its balance effect, and
// moves the template's schedule pointer in one database transaction. The
// pointer update is guarded by an optimistic check on prevDue; losing the
// race returns ErrConflict with nothing written, so a concurrent runner
// cannot double-spawn a cycle.
func (r *PgxLedgerRepository) SpawnAndAdvance(ctx context.Context, leaf domain.Transaction, balanceDelta decimal.Decimal, templateID string, prevDue, nextDue time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET next_due_date = $1, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $4 AND user_id = $5 AND is_recurring = TRUE AND next_due_date = $6;
	`, nextDue, leaf.CreatedAt, leaf.CreatedBy, templateID, leaf.UserID, prevDue)
	if err != nil {
		return fmt.Errorf("failed to advance template %s: %w", templateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("template %s already advanced past %s: %w", templateID, prevDue.Format(time.RFC3339), apperrors.ErrConflict)
	}

	if err := insertTransactionTx(ctx, tx, mapping.ToModelTransaction(leaf)); err != nil {
		return fmt.Errorf("failed to insert spawned entry for template %s: %w", templateID, err)
	}

	if leaf.AccountID != nil && !balanceDelta.IsZero() {
		if err := applyBalanceDeltaTx(ctx, tx, leaf.UserID, *leaf.AccountID, balanceDelta, leaf.CreatedBy, leaf.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
