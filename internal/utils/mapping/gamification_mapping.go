package mapping

import (
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/models"
)

// ToDomainBadge converts a model Badge to a domain Badge
func ToDomainBadge(m models.Badge) domain.Badge {
	return domain.Badge{
		BadgeID:     m.BadgeID,
		Name:        m.Name,
		Description: m.Description,
		IconTag:     m.IconTag,
		Criterion:   domain.BadgeCriterionType(m.Criterion),
		Params: domain.BadgeCriterion{
			CompletedVaults:  m.CompletedVaults,
			StreakDays:       m.StreakDays,
			TransactionCount: m.TransactionCount,
			VaultCount:       m.VaultCount,
		},
	}
}

// ToDomainBadgeSlice converts a slice of model Badges to domain Badges
func ToDomainBadgeSlice(ms []models.Badge) []domain.Badge {
	ds := make([]domain.Badge, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBadge(m)
	}
	return ds
}

// ToDomainAwardedBadge converts a model AwardedBadge to a domain AwardedBadge
func ToDomainAwardedBadge(m models.AwardedBadge) domain.AwardedBadge {
	return domain.AwardedBadge{
		UserID:    m.UserID,
		BadgeID:   m.BadgeID,
		AwardedAt: m.AwardedAt,
	}
}

// ToDomainAwardedBadgeSlice converts a slice of model AwardedBadges to domain AwardedBadges
func ToDomainAwardedBadgeSlice(ms []models.AwardedBadge) []domain.AwardedBadge {
	ds := make([]domain.AwardedBadge, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAwardedBadge(m)
	}
	return ds
}

// ToModelChallenge converts a domain Challenge to a model Challenge
func ToModelChallenge(d domain.Challenge) models.Challenge {
	return models.Challenge{
		ChallengeID:    d.ChallengeID,
		UserID:         d.UserID,
		TemplateID:     d.TemplateID,
		ChallengeType:  string(d.Type),
		Name:           d.Name,
		TargetValue:    d.TargetValue,
		CurrentValue:   d.CurrentValue,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Status:         string(d.Status),
		CategoryFilter: d.CategoryFilter,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChallenge converts a model Challenge to a domain Challenge
func ToDomainChallenge(m models.Challenge) domain.Challenge {
	return domain.Challenge{
		ChallengeID:    m.ChallengeID,
		UserID:         m.UserID,
		TemplateID:     m.TemplateID,
		Type:           domain.ChallengeType(m.ChallengeType),
		Name:           m.Name,
		TargetValue:    m.TargetValue,
		CurrentValue:   m.CurrentValue,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         domain.ChallengeStatus(m.Status),
		CategoryFilter: m.CategoryFilter,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainChallengeSlice converts a slice of model Challenges to domain Challenges
func ToDomainChallengeSlice(ms []models.Challenge) []domain.Challenge {
	ds := make([]domain.Challenge, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainChallenge(m)
	}
	return ds
}

// ToModelGamificationState converts a domain GamificationState to its model
func ToModelGamificationState(d domain.GamificationState) models.GamificationState {
	return models.GamificationState{
		UserID:        d.UserID,
		CurrentStreak: d.CurrentStreak,
		LongestStreak: d.LongestStreak,
		LastLoginDate: d.LastLoginDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGamificationState converts a model GamificationState to its domain form
func ToDomainGamificationState(m models.GamificationState) domain.GamificationState {
	return domain.GamificationState{
		UserID:        m.UserID,
		CurrentStreak: m.CurrentStreak,
		LongestStreak: m.LongestStreak,
		LastLoginDate: m.LastLoginDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
