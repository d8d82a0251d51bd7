package repositories

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
)

// BadgeReader defines read operations over the badge catalog and a user's
// awarded set.
type BadgeReader interface {
	// ListBadgeCatalog retrieves all badge definitions.
	ListBadgeCatalog(ctx context.Context) ([]domain.Badge, error)

	// ListAwardedBadges retrieves the badges the user has earned.
	ListAwardedBadges(ctx context.Context, userID string) ([]domain.AwardedBadge, error)
}

// BadgeWriter defines write operations for badge awards.
type BadgeWriter interface {
	// AwardBadge records a badge award. The insert is an idempotent upsert:
	// awarding an already-held badge is a no-op and returns alreadyHeld true.
	AwardBadge(ctx context.Context, userID, badgeID string, awardedAt time.Time) (alreadyHeld bool, err error)
}

// ChallengeReader defines read operations for challenges.
type ChallengeReader interface {
	// FindChallengeByID retrieves a specific challenge owned by the user.
	FindChallengeByID(ctx context.Context, userID, challengeID string) (*domain.Challenge, error)

	// ListChallengesByUser retrieves all of the user's challenges, newest first.
	ListChallengesByUser(ctx context.Context, userID string) ([]domain.Challenge, error)

	// ListActiveChallenges retrieves the user's challenges still in ACTIVE state.
	ListActiveChallenges(ctx context.Context, userID string) ([]domain.Challenge, error)
}

// ChallengeWriter defines write operations for challenges.
type ChallengeWriter interface {
	// SaveChallenge persists a new challenge instance.
	SaveChallenge(ctx context.Context, challenge domain.Challenge) error

	// UpdateChallengeProgress persists a challenge's current value and status.
	UpdateChallengeProgress(ctx context.Context, challenge domain.Challenge) error
}

// StreakRepository persists per-user login streak state.
type StreakRepository interface {
	// GetGamificationState retrieves the user's streak state, or a zero
	// state if the user has never logged a qualifying event.
	GetGamificationState(ctx context.Context, userID string) (*domain.GamificationState, error)

	// SaveGamificationState upserts the user's streak state.
	SaveGamificationState(ctx context.Context, state domain.GamificationState) error
}

// GamificationRepositoryFacade combines all gamification repository interfaces.
type GamificationRepositoryFacade interface {
	BadgeReader
	BadgeWriter
	ChallengeReader
	ChallengeWriter
	StreakRepository
}
