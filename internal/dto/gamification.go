package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BadgeResponse defines the data returned for a badge catalog entry.
type BadgeResponse struct {
	BadgeID     string `json:"badgeID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconTag     string `json:"iconTag"`
	Earned      bool   `json:"earned"`
	AwardedAt   string `json:"awardedAt,omitempty"`
}

// ListBadgesResponse wraps the badge catalog annotated with the user's
// awarded set.
type ListBadgesResponse struct {
	Badges []BadgeResponse `json:"badges"`
}

// StreakResponse defines the data returned for the user's login streak.
type StreakResponse struct {
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastLoginDate string `json:"lastLoginDate,omitempty"`
}

// RecordLoginResponse reports the streak after a login event plus any badges
// the event newly earned.
type RecordLoginResponse struct {
	CurrentStreak int      `json:"currentStreak"`
	NewBadges     []string `json:"newBadges,omitempty"`
}

// ActivateChallengeRequest starts a challenge from a catalog template.
type ActivateChallengeRequest struct {
	TemplateID string `json:"templateID" binding:"required"`
}

// ChallengeResponse defines the data returned for a challenge.
type ChallengeResponse struct {
	ChallengeID    string                 `json:"challengeID"`
	Type           domain.ChallengeType   `json:"type"`
	Name           string                 `json:"name"`
	TargetValue    decimal.Decimal        `json:"targetValue"`
	CurrentValue   decimal.Decimal        `json:"currentValue"`
	StartDate      time.Time              `json:"startDate"`
	EndDate        time.Time              `json:"endDate"`
	Status         domain.ChallengeStatus `json:"status"`
	CategoryFilter *string                `json:"categoryFilter,omitempty"`
}

// ListChallengesResponse wraps the user's challenges.
type ListChallengesResponse struct {
	Challenges []ChallengeResponse `json:"challenges"`
}

// ToBadgeResponse converts a catalog badge plus award info to a DTO.
func ToBadgeResponse(b domain.Badge, awardedAt *time.Time) BadgeResponse {
	resp := BadgeResponse{
		BadgeID:     b.BadgeID,
		Name:        b.Name,
		Description: b.Description,
		IconTag:     b.IconTag,
		Earned:      awardedAt != nil,
	}
	if awardedAt != nil {
		resp.AwardedAt = awardedAt.Format(time.RFC3339)
	}
	return resp
}

// ToChallengeResponse converts a domain.Challenge to its DTO.
func ToChallengeResponse(c *domain.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ChallengeID:    c.ChallengeID,
		Type:           c.Type,
		Name:           c.Name,
		TargetValue:    c.TargetValue,
		CurrentValue:   c.CurrentValue,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Status:         c.Status,
		CategoryFilter: c.CategoryFilter,
	}
}

// ToListChallengesResponse converts a slice of domain challenges.
func ToListChallengesResponse(challenges []domain.Challenge) ListChallengesResponse {
	out := make([]ChallengeResponse, len(challenges))
	for i := range challenges {
		out[i] = ToChallengeResponse(&challenges[i])
	}
	return ListChallengesResponse{Challenges: out}
}

// ToStreakResponse converts gamification state to its DTO.
func ToStreakResponse(s *domain.GamificationState) StreakResponse {
	resp := StreakResponse{
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
	}
	if s.LastLoginDate != nil {
		resp.LastLoginDate = s.LastLoginDate.Format("2006-01-02")
	}
	return resp
}
