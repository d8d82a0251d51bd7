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
)

type PgxGamificationRepository struct {
	BaseRepository
}

func newPgxGamificationRepository(pool *pgxpool.Pool) portsrepo.GamificationRepositoryFacade {
	return &PgxGamificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GamificationRepositoryFacade = (*PgxGamificationRepository)(nil)

func (r *PgxGamificationRepository) ListBadgeCatalog(ctx context.Context) ([]domain.Badge, error) {
	query := `
		SELECT badge_id, name, description, icon_tag, criterion, completed_vaults, streak_days, transaction_count, vault_count
		FROM badges
		ORDER BY badge_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query badge catalog: %w", err)
	}
	defer rows.Close()

	ms := []models.Badge{}
	for rows.Next() {
		var m models.Badge
		err := rows.Scan(
			&m.BadgeID,
			&m.Name,
			&m.Description,
			&m.IconTag,
			&m.Criterion,
			&m.CompletedVaults,
			&m.StreakDays,
			&m.TransactionCount,
			&m.VaultCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan badge row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating badge rows: %w", rows.Err())
	}

	return mapping.ToDomainBadgeSlice(ms), nil
}

func (r *PgxGamificationRepository) ListAwardedBadges(ctx context.Context, userID string) ([]domain.AwardedBadge, error) {
	query := `SELECT user_id, badge_id, awarded_at FROM awarded_badges WHERE user_id = $1 ORDER BY awarded_at ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query awarded badges: %w", err)
	}
	defer rows.Close()

	ms := []models.AwardedBadge{}
	for rows.Next() {
		var m models.AwardedBadge
		if err := rows.Scan(&m.UserID, &m.BadgeID, &m.AwardedAt); err != nil {
			return nil, fmt.Errorf("failed to scan awarded badge row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating awarded badge rows: %w", rows.Err())
	}

	return mapping.ToDomainAwardedBadgeSlice(ms), nil
}

// AwardBadge records a badge award. ON CONFLICT DO NOTHING makes repeated
// awards a no-op; alreadyHeld is true when the user already had the badge.
func (r *PgxGamificationRepository) AwardBadge(ctx context.Context, userID, badgeID string, awardedAt time.Time) (bool, error) {
	query := `
		INSERT INTO awarded_badges (user_id, badge_id, awarded_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, badge_id) DO NOTHING;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, badgeID, awardedAt)
	if err != nil {
		return false, fmt.Errorf("failed to award badge %s: %w", badgeID, err)
	}
	return cmdTag.RowsAffected() == 0, nil
}

const challengeColumns = `challenge_id, user_id, template_id, challenge_type, name, target_value, current_value, start_date, end_date, status, category_filter, created_at, created_by, last_updated_at, last_updated_by`

func scanChallenge(row pgx.Row) (models.Challenge, error) {
	var m models.Challenge
	err := row.Scan(
		&m.ChallengeID,
		&m.UserID,
		&m.TemplateID,
		&m.ChallengeType,
		&m.Name,
		&m.TargetValue,
		&m.CurrentValue,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CategoryFilter,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxGamificationRepository) FindChallengeByID(ctx context.Context, userID, challengeID string) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE challenge_id = $1 AND user_id = $2;`
	m, err := scanChallenge(r.Pool.QueryRow(ctx, query, challengeID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find challenge %s: %w", challengeID, err)
	}
	d := mapping.ToDomainChallenge(m)
	return &d, nil
}

func (r *PgxGamificationRepository) ListChallengesByUser(ctx context.Context, userID string) ([]domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE user_id = $1 ORDER BY created_at DESC;`
	return r.queryChallenges(ctx, query, userID)
}

func (r *PgxGamificationRepository) ListActiveChallenges(ctx context.Context, userID string) ([]domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE user_id = $1 AND status = 'ACTIVE' ORDER BY created_at DESC;`
	return r.queryChallenges(ctx, query, userID)
}

func (r *PgxGamificationRepository) queryChallenges(ctx context.Context, query string, args ...any) ([]domain.Challenge, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	ms := []models.Challenge{}
	for rows.Next() {
		m, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating challenge rows: %w", rows.Err())
	}

	return mapping.ToDomainChallengeSlice(ms), nil
}

func (r *PgxGamificationRepository) SaveChallenge(ctx context.Context, challenge domain.Challenge) error {
	m := mapping.ToModelChallenge(challenge)
	query := `
		INSERT INTO challenges (` + challengeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ChallengeID,
		m.UserID,
		m.TemplateID,
		m.ChallengeType,
		m.Name,
		m.TargetValue,
		m.CurrentValue,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.CategoryFilter,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}
	return nil
}

func (r *PgxGamificationRepository) UpdateChallengeProgress(ctx context.Context, challenge domain.Challenge) error {
	m := mapping.ToModelChallenge(challenge)
	query := `
		UPDATE challenges
		SET current_value = $1, status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE challenge_id = $5 AND user_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CurrentValue,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ChallengeID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update challenge progress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("challenge not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxGamificationRepository) GetGamificationState(ctx context.Context, userID string) (*domain.GamificationState, error) {
	query := `
		SELECT user_id, current_streak, longest_streak, last_login_date, created_at, created_by, last_updated_at, last_updated_by
		FROM gamification_state
		WHERE user_id = $1;
	`
	var m models.GamificationState
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.CurrentStreak,
		&m.LongestStreak,
		&m.LastLoginDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// First qualifying event for this user: start from a zero state.
			return &domain.GamificationState{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get gamification state: %w", err)
	}
	d := mapping.ToDomainGamificationState(m)
	return &d, nil
}

func (r *PgxGamificationRepository) SaveGamificationState(ctx context.Context, state domain.GamificationState) error {
	m := mapping.ToModelGamificationState(state)
	query := `
		INSERT INTO gamification_state (user_id, current_streak, longest_streak, last_login_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_login_date = EXCLUDED.last_login_date,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.CurrentStreak,
		m.LongestStreak,
		m.LastLoginDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save gamification state: %w", err)
	}
	return nil
}
