package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_backend/internal/models"
	"github.com/pocketfin/pocketfin_backend/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, user_id, category, allocated, month, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.Allocated,
		&m.Month,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Category,
		m.Allocated,
		m.Month,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("budget for category %q in %s already exists: %w", budget.Category, budget.Month.Format("2006-01"), apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 AND user_id = $2;`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	d := mapping.ToDomainBudget(m)
	return &d, nil
}

func (r *PgxBudgetRepository) ListBudgetsByMonth(ctx context.Context, userID string, month time.Time) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 AND month = $2 ORDER BY category ASC;`
	rows, err := r.Pool.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	ms := []models.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}

	return mapping.ToDomainBudgetSlice(ms), nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		UPDATE budgets
		SET allocated = $1, last_updated_at = $2, last_updated_by = $3
		WHERE budget_id = $4 AND user_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Allocated,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BudgetID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
