package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BadgeCriterionType identifies which aggregate fact a badge is checked against.
type BadgeCriterionType string

const (
	SavingsCompletion BadgeCriterionType = "SAVINGS_COMPLETION"
	StreakCriterion   BadgeCriterionType = "STREAK"
	ChallengeWin      BadgeCriterionType = "CHALLENGE"
	Milestone         BadgeCriterionType = "MILESTONE"
)

// BadgeCriterion holds the thresholds for a badge. Only the fields relevant
// to the criterion type are set; zero means "not part of this criterion".
type BadgeCriterion struct {
	CompletedVaults  int `json:"completedVaults,omitempty"`
	StreakDays       int `json:"streakDays,omitempty"`
	TransactionCount int `json:"transactionCount,omitempty"`
	VaultCount       int `json:"vaultCount,omitempty"`
}

// Badge is a static achievement definition awarded at most once per user.
type Badge struct {
	BadgeID     string             `json:"badgeID"` // Primary Key (stable slug, e.g. "streak-7")
	Name        string             `json:"name"`
	Description string             `json:"description"`
	IconTag     string             `json:"iconTag"`
	Criterion   BadgeCriterionType `json:"criterion"`
	Params      BadgeCriterion     `json:"params"`
}

// AwardedBadge records that a user earned a badge.
type AwardedBadge struct {
	UserID    string    `json:"userID"`
	BadgeID   string    `json:"badgeID"`
	AwardedAt time.Time `json:"awardedAt"`
}

// ChallengeType identifies what ledger activity a challenge accumulates.
type ChallengeType string

const (
	SavingsGoal   ChallengeType = "SAVINGS_GOAL"
	SpendingLimit ChallengeType = "SPENDING_LIMIT"
)

// ChallengeStatus is the unambiguous three-state challenge lifecycle.
// A challenge that reaches its target becomes SUCCEEDED; one whose window
// closes first becomes FAILED. Terminal challenges are never re-activated,
// only replaced by a fresh instance.
type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "ACTIVE"
	ChallengeSucceeded ChallengeStatus = "SUCCEEDED"
	ChallengeFailed    ChallengeStatus = "FAILED"
)

// Challenge is a time-boxed gamification goal tracked against ledger
// activity inside [StartDate, EndDate].
type Challenge struct {
	ChallengeID    string          `json:"challengeID"` // Primary Key (e.g., UUID)
	UserID         string          `json:"userID"`      // FK -> users.user_id (Not Null)
	TemplateID     string          `json:"templateID"`  // Catalog entry this was activated from
	Type           ChallengeType   `json:"type"`
	Name           string          `json:"name"`
	TargetValue    decimal.Decimal `json:"targetValue"`
	CurrentValue   decimal.Decimal `json:"currentValue"` // Clamped to TargetValue once reached
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	Status         ChallengeStatus `json:"status"`
	CategoryFilter *string         `json:"categoryFilter,omitempty"` // Optional expense-category restriction
	AuditFields
}

// IsTerminal reports whether the challenge has reached a final state.
func (c Challenge) IsTerminal() bool {
	return c.Status != ChallengeActive
}

// ChallengeTemplate is a static catalog entry a user can activate into a
// concrete Challenge instance.
type ChallengeTemplate struct {
	TemplateID     string          `json:"templateID"`
	Type           ChallengeType   `json:"type"`
	Name           string          `json:"name"`
	TargetValue    decimal.Decimal `json:"targetValue"`
	DurationDays   int             `json:"durationDays"`
	CategoryFilter *string         `json:"categoryFilter,omitempty"`
}

// GamificationState tracks a user's login streak at calendar-day granularity.
type GamificationState struct {
	UserID        string     `json:"userID"`
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	LastLoginDate *time.Time `json:"lastLoginDate,omitempty"` // Date-only, zero time-of-day
	AuditFields
}

// GamificationFacts is the aggregate snapshot badge criteria are evaluated
// against.
type GamificationFacts struct {
	CompletedVaults  int
	CurrentStreak    int
	TransactionCount int
	VaultCount       int
}
