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
	"github.com/shopspring/decimal"
)

type PgxVaultRepository struct {
	BaseRepository
}

func newPgxVaultRepository(pool *pgxpool.Pool) portsrepo.VaultRepositoryFacade {
	return &PgxVaultRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VaultRepositoryFacade = (*PgxVaultRepository)(nil)

const vaultColumns = `vault_id, account_id, user_id, name, icon_tag, current_amount, target_amount, deadline, created_at, created_by, last_updated_at, last_updated_by`

func scanVault(row pgx.Row) (models.Vault, error) {
	var m models.Vault
	err := row.Scan(
		&m.VaultID,
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.IconTag,
		&m.CurrentAmount,
		&m.TargetAmount,
		&m.Deadline,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxVaultRepository) SaveVault(ctx context.Context, vault domain.Vault) error {
	m := mapping.ToModelVault(vault)
	query := `
		INSERT INTO vaults (vault_id, account_id, user_id, name, icon_tag, current_amount, target_amount, deadline, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VaultID,
		m.AccountID,
		m.UserID,
		m.Name,
		m.IconTag,
		m.CurrentAmount,
		m.TargetAmount,
		m.Deadline,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}
	return nil
}

func (r *PgxVaultRepository) FindVaultByID(ctx context.Context, userID, vaultID string) (*domain.Vault, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE vault_id = $1 AND user_id = $2;`
	m, err := scanVault(r.Pool.QueryRow(ctx, query, vaultID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vault %s: %w", vaultID, err)
	}
	d := mapping.ToDomainVault(m)
	return &d, nil
}

func (r *PgxVaultRepository) ListVaultsByAccount(ctx context.Context, userID, accountID string) ([]domain.Vault, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE user_id = $1 AND account_id = $2 ORDER BY created_at ASC;`
	return r.queryVaults(ctx, query, userID, accountID)
}

func (r *PgxVaultRepository) ListVaultsByUser(ctx context.Context, userID string) ([]domain.Vault, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE user_id = $1 ORDER BY created_at ASC;`
	return r.queryVaults(ctx, query, userID)
}

func (r *PgxVaultRepository) queryVaults(ctx context.Context, query string, args ...any) ([]domain.Vault, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vaults: %w", err)
	}
	defer rows.Close()

	ms := []models.Vault{}
	for rows.Next() {
		m, err := scanVault(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vault row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vault rows: %w", rows.Err())
	}

	return mapping.ToDomainVaultSlice(ms), nil
}

func (r *PgxVaultRepository) CountVaultsByUser(ctx context.Context, userID string) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE target_amount > 0 AND current_amount >= target_amount)
		FROM vaults
		WHERE user_id = $1;
	`
	var total, completed int
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("failed to count vaults: %w", err)
	}
	return total, completed, nil
}

func (r *PgxVaultRepository) UpdateVault(ctx context.Context, vault domain.Vault) error {
	m := mapping.ToModelVault(vault)
	query := `
		UPDATE vaults
		SET name = $1, icon_tag = $2, current_amount = $3, target_amount = $4, deadline = $5, last_updated_at = $6, last_updated_by = $7
		WHERE vault_id = $8 AND user_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.IconTag,
		m.CurrentAmount,
		m.TargetAmount,
		m.Deadline,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.VaultID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vault: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("vault not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// Deposit moves amount from the parent account's balance into the vault
// inside one database transaction. The account row is locked first so
// concurrent deposits cannot overdraw it.
func (r *PgxVaultRepository) Deposit(ctx context.Context, userID, vaultID string, amount decimal.Decimal, updatedBy string) (*domain.Vault, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var accountID string
	err = tx.QueryRow(ctx, `SELECT account_id FROM vaults WHERE vault_id = $1 AND user_id = $2 FOR UPDATE;`, vaultID, userID).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock vault %s: %w", vaultID, err)
	}

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE account_id = $1 AND user_id = $2 FOR UPDATE;`, accountID, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("parent account missing: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	if balance.LessThan(amount) {
		return nil, fmt.Errorf("insufficient account balance for deposit: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	_, err = tx.Exec(ctx, `UPDATE accounts SET balance = balance - $1, last_updated_at = $2, last_updated_by = $3 WHERE account_id = $4;`,
		amount, now, updatedBy, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to debit account: %w", err)
	}

	m, err := scanVault(tx.QueryRow(ctx, `
		UPDATE vaults
		SET current_amount = current_amount + $1, last_updated_at = $2, last_updated_by = $3
		WHERE vault_id = $4
		RETURNING `+vaultColumns+`;
	`, amount, now, updatedBy, vaultID))
	if err != nil {
		return nil, fmt.Errorf("failed to credit vault: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainVault(m)
	return &d, nil
}

func (r *PgxVaultRepository) DeleteVault(ctx context.Context, userID, vaultID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM vaults WHERE vault_id = $1 AND user_id = $2;`, vaultID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete vault: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("vault not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
