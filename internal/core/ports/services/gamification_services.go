package services

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// StreakSvc tracks login-streak continuity.
type StreakSvc interface {
	// RecordLogin applies the streak rules for a login on the given day:
	// yesterday's login extends the streak, a gap resets it to 1, a repeat
	// login on the same calendar day changes nothing. Streak changes
	// trigger a badge eligibility check.
	RecordLogin(ctx context.Context, userID string, today time.Time) (*dto.RecordLoginResponse, error)

	// GetStreak returns the user's current streak state.
	GetStreak(ctx context.Context, userID string) (*dto.StreakResponse, error)
}

// BadgeSvc evaluates and awards achievement badges.
type BadgeSvc interface {
	// ListBadges returns the badge catalog annotated with the user's awards.
	ListBadges(ctx context.Context, userID string) (*dto.ListBadgesResponse, error)

	// CheckBadgeEligibility evaluates every catalog badge the user does not
	// yet hold against current aggregate facts, awarding each newly eligible
	// badge exactly once and emitting one notification per award. Returns
	// the IDs of newly awarded badges.
	CheckBadgeEligibility(ctx context.Context, userID string) ([]string, error)
}

// ChallengeSvc manages time-boxed gamification goals.
type ChallengeSvc interface {
	// ActivateChallenge instantiates a challenge from the static catalog.
	ActivateChallenge(ctx context.Context, userID string, req dto.ActivateChallengeRequest, now time.Time) (*domain.Challenge, error)

	// ListChallenges returns all of the user's challenges.
	ListChallenges(ctx context.Context, userID string) (*dto.ListChallengesResponse, error)

	// RefreshChallenges recomputes every active challenge's accumulated
	// value from qualifying ledger entries inside its window, clamping to
	// the target, then fails any challenge whose window closed without
	// completion.
	RefreshChallenges(ctx context.Context, userID string, now time.Time) error
}

// GamificationSvcFacade combines all gamification service interfaces.
type GamificationSvcFacade interface {
	StreakSvc
	BadgeSvc
	ChallengeSvc
}
