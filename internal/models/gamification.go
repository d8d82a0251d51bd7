package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Badge represents a row in the static badge catalog. The criterion
// threshold columns default to zero when not part of the criterion.
type Badge struct {
	BadgeID          string `db:"badge_id"`
	Name             string `db:"name"`
	Description      string `db:"description"`
	IconTag          string `db:"icon_tag"`
	Criterion        string `db:"criterion"`
	CompletedVaults  int    `db:"completed_vaults"`
	StreakDays       int    `db:"streak_days"`
	TransactionCount int    `db:"transaction_count"`
	VaultCount       int    `db:"vault_count"`
}

// AwardedBadge records that a user earned a badge. (user_id, badge_id) is
// the primary key, which makes awards idempotent.
type AwardedBadge struct {
	UserID    string    `db:"user_id"`
	BadgeID   string    `db:"badge_id"`
	AwardedAt time.Time `db:"awarded_at"`
}

// Challenge represents a time-boxed gamification goal row.
type Challenge struct {
	ChallengeID    string          `db:"challenge_id"`
	UserID         string          `db:"user_id"`
	TemplateID     string          `db:"template_id"`
	ChallengeType  string          `db:"challenge_type"`
	Name           string          `db:"name"`
	TargetValue    decimal.Decimal `db:"target_value"`
	CurrentValue   decimal.Decimal `db:"current_value"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	Status         string          `db:"status"`
	CategoryFilter *string         `db:"category_filter"`
	AuditFields
}

// GamificationState tracks a user's login streak, one row per user.
type GamificationState struct {
	UserID        string     `db:"user_id"`
	CurrentStreak int        `db:"current_streak"`
	LongestStreak int        `db:"longest_streak"`
	LastLoginDate *time.Time `db:"last_login_date"`
	AuditFields
}
