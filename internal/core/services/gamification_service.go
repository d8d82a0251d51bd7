package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/pocketfin/pocketfin_backend/internal/utils/aggregation"
	"github.com/shopspring/decimal"
)

// challengeCatalog is the static set of activatable challenges. Instances
// reference their template by ID so a finished challenge can be re-activated
// as a fresh instance.
var challengeCatalog = []domain.ChallengeTemplate{
	{TemplateID: "save-50k-month", Type: domain.SavingsGoal, Name: "Save 50,000 this month", TargetValue: decimal.NewFromInt(50000), DurationDays: 30},
	{TemplateID: "save-10k-week", Type: domain.SavingsGoal, Name: "Save 10,000 this week", TargetValue: decimal.NewFromInt(10000), DurationDays: 7},
	{TemplateID: "spend-under-20k-week", Type: domain.SpendingLimit, Name: "Keep weekly spending under 20,000", TargetValue: decimal.NewFromInt(20000), DurationDays: 7},
	{TemplateID: "no-eating-out-week", Type: domain.SpendingLimit, Name: "No eating out for a week", TargetValue: decimal.NewFromInt(1), DurationDays: 7, CategoryFilter: strPtr("Eating Out")},
}

func strPtr(s string) *string { return &s }

type gamificationService struct {
	BaseService
	gamificationRepo portsrepo.GamificationRepositoryFacade
	vaultRepo        portsrepo.VaultReader
	ledgerRepo       portsrepo.LedgerReader
	notifier         portssvc.NotificationSink
}

// NewGamificationService creates the streak, badge and challenge service.
// notifier may be nil.
func NewGamificationService(
	gamificationRepo portsrepo.GamificationRepositoryFacade,
	vaultRepo portsrepo.VaultReader,
	ledgerRepo portsrepo.LedgerReader,
	notifier portssvc.NotificationSink,
) portssvc.GamificationSvcFacade {
	return &gamificationService{
		gamificationRepo: gamificationRepo,
		vaultRepo:        vaultRepo,
		ledgerRepo:       ledgerRepo,
		notifier:         notifier,
	}
}

var _ portssvc.GamificationSvcFacade = (*gamificationService)(nil)

// calendarDay truncates a time to its UTC calendar day.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// applyLoginToStreak is the pure streak rule: consecutive-day logins extend
// the streak, a gap resets it to 1, and repeated logins on the same calendar
// day change nothing.
func applyLoginToStreak(state domain.GamificationState, today time.Time) (domain.GamificationState, bool) {
	day := calendarDay(today)

	if state.LastLoginDate != nil && state.LastLoginDate.Equal(day) {
		return state, false
	}

	switch {
	case state.LastLoginDate != nil && state.LastLoginDate.Equal(day.AddDate(0, 0, -1)):
		state.CurrentStreak++
	default:
		state.CurrentStreak = 1
	}
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}
	state.LastLoginDate = &day
	return state, true
}

func (s *gamificationService) RecordLogin(ctx context.Context, userID string, today time.Time) (*dto.RecordLoginResponse, error) {
	state, err := s.gamificationRepo.GetGamificationState(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, changed := applyLoginToStreak(*state, today)
	if !changed {
		return &dto.RecordLoginResponse{CurrentStreak: next.CurrentStreak}, nil
	}

	if next.CreatedAt.IsZero() {
		next.AuditFields = domain.NewAuditFields(userID, today)
	} else {
		next.Touch(userID, today)
	}
	next.UserID = userID

	if err := s.gamificationRepo.SaveGamificationState(ctx, next); err != nil {
		return nil, err
	}

	newBadges, err := s.CheckBadgeEligibility(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Badge check after login failed", slog.String("user_id", userID))
		newBadges = nil
	}

	return &dto.RecordLoginResponse{CurrentStreak: next.CurrentStreak, NewBadges: newBadges}, nil
}

func (s *gamificationService) GetStreak(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	state, err := s.gamificationRepo.GetGamificationState(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToStreakResponse(state)
	return &resp, nil
}

func (s *gamificationService) ListBadges(ctx context.Context, userID string) (*dto.ListBadgesResponse, error) {
	catalog, err := s.gamificationRepo.ListBadgeCatalog(ctx)
	if err != nil {
		return nil, err
	}
	awarded, err := s.gamificationRepo.ListAwardedBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	awardedAt := make(map[string]time.Time, len(awarded))
	for _, a := range awarded {
		awardedAt[a.BadgeID] = a.AwardedAt
	}

	resp := &dto.ListBadgesResponse{Badges: make([]dto.BadgeResponse, len(catalog))}
	for i, b := range catalog {
		var at *time.Time
		if t, ok := awardedAt[b.BadgeID]; ok {
			at = &t
		}
		resp.Badges[i] = dto.ToBadgeResponse(b, at)
	}
	return resp, nil
}

// meetsCriterion evaluates one badge definition against the aggregate facts.
func meetsCriterion(b domain.Badge, facts domain.GamificationFacts) bool {
	switch b.Criterion {
	case domain.SavingsCompletion:
		return b.Params.CompletedVaults > 0 && facts.CompletedVaults >= b.Params.CompletedVaults
	case domain.StreakCriterion:
		return b.Params.StreakDays > 0 && facts.CurrentStreak >= b.Params.StreakDays
	case domain.Milestone:
		if b.Params.TransactionCount > 0 {
			return facts.TransactionCount >= b.Params.TransactionCount
		}
		if b.Params.VaultCount > 0 {
			return facts.VaultCount >= b.Params.VaultCount
		}
		return false
	default:
		return false
	}
}

func (s *gamificationService) collectFacts(ctx context.Context, userID string) (domain.GamificationFacts, error) {
	var facts domain.GamificationFacts

	total, completed, err := s.vaultRepo.CountVaultsByUser(ctx, userID)
	if err != nil {
		return facts, err
	}
	facts.VaultCount = total
	facts.CompletedVaults = completed

	state, err := s.gamificationRepo.GetGamificationState(ctx, userID)
	if err != nil {
		return facts, err
	}
	facts.CurrentStreak = state.CurrentStreak

	count, err := s.ledgerRepo.CountEntriesByUser(ctx, userID)
	if err != nil {
		return facts, err
	}
	facts.TransactionCount = count

	return facts, nil
}

// CheckBadgeEligibility awards every catalog badge the user newly qualifies
// for. Awards are idempotent upserts, so concurrent checks cannot
// double-award or double-notify.
func (s *gamificationService) CheckBadgeEligibility(ctx context.Context, userID string) ([]string, error) {
	catalog, err := s.gamificationRepo.ListBadgeCatalog(ctx)
	if err != nil {
		return nil, err
	}
	awarded, err := s.gamificationRepo.ListAwardedBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	held := make(map[string]bool, len(awarded))
	for _, a := range awarded {
		held[a.BadgeID] = true
	}

	facts, err := s.collectFacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var newBadges []string
	for _, b := range catalog {
		if held[b.BadgeID] || !meetsCriterion(b, facts) {
			continue
		}
		alreadyHeld, err := s.gamificationRepo.AwardBadge(ctx, userID, b.BadgeID, now)
		if err != nil {
			return newBadges, err
		}
		if alreadyHeld {
			continue
		}
		newBadges = append(newBadges, b.BadgeID)
		if s.notifier != nil {
			s.notifier.Emit(ctx, userID, domain.NotificationBadgeAwarded,
				"Badge earned!",
				fmt.Sprintf("You earned the %q badge.", b.Name),
				map[string]string{"badgeID": b.BadgeID})
		}
	}

	return newBadges, nil
}

func findChallengeTemplate(templateID string) (domain.ChallengeTemplate, bool) {
	for _, t := range challengeCatalog {
		if t.TemplateID == templateID {
			return t, true
		}
	}
	return domain.ChallengeTemplate{}, false
}

func (s *gamificationService) ActivateChallenge(ctx context.Context, userID string, req dto.ActivateChallengeRequest, now time.Time) (*domain.Challenge, error) {
	tmpl, ok := findChallengeTemplate(req.TemplateID)
	if !ok {
		return nil, fmt.Errorf("unknown challenge template %q: %w", req.TemplateID, apperrors.ErrNotFound)
	}

	// One live instance per template; finished ones may be re-activated.
	active, err := s.gamificationRepo.ListActiveChallenges(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range active {
		if c.TemplateID == tmpl.TemplateID {
			return nil, fmt.Errorf("challenge %q is already active: %w", tmpl.TemplateID, apperrors.ErrDuplicate)
		}
	}

	challenge := domain.Challenge{
		ChallengeID:    uuid.NewString(),
		UserID:         userID,
		TemplateID:     tmpl.TemplateID,
		Type:           tmpl.Type,
		Name:           tmpl.Name,
		TargetValue:    tmpl.TargetValue,
		CurrentValue:   decimal.Zero,
		StartDate:      now,
		EndDate:        now.AddDate(0, 0, tmpl.DurationDays),
		Status:         domain.ChallengeActive,
		CategoryFilter: tmpl.CategoryFilter,
		AuditFields:    domain.NewAuditFields(userID, now),
	}

	if err := s.gamificationRepo.SaveChallenge(ctx, challenge); err != nil {
		s.LogError(ctx, err, "Failed to activate challenge", slog.String("template_id", tmpl.TemplateID))
		return nil, err
	}

	return &challenge, nil
}

func (s *gamificationService) ListChallenges(ctx context.Context, userID string) (*dto.ListChallengesResponse, error) {
	challenges, err := s.gamificationRepo.ListChallengesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListChallengesResponse(challenges)
	return &resp, nil
}

// challengeValue recomputes a challenge's accumulated value from the ledger
// entries inside its window. Savings goals accumulate net inflow (never
// below zero); spending limits accumulate expense outflow, optionally
// restricted to one category.
func challengeValue(c domain.Challenge, entries []domain.Transaction) decimal.Decimal {
	windowed := aggregation.FilterWindow(entries, c.StartDate, c.EndDate)

	switch c.Type {
	case domain.SavingsGoal:
		net := aggregation.SumByType(windowed, domain.Income).Sub(aggregation.SumByType(windowed, domain.Expense))
		if net.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return net
	case domain.SpendingLimit:
		if c.CategoryFilter != nil {
			filtered := windowed[:0:0]
			for _, e := range windowed {
				if e.Category == *c.CategoryFilter {
					filtered = append(filtered, e)
				}
			}
			windowed = filtered
		}
		return aggregation.SumByType(windowed, domain.Expense)
	}
	return decimal.Zero
}

// resolveChallenge applies the lifecycle rules to a recomputed value.
// CurrentValue is clamped to the target so progress bars never overflow.
func resolveChallenge(c domain.Challenge, value decimal.Decimal, now time.Time) domain.Challenge {
	expired := now.After(c.EndDate)

	switch c.Type {
	case domain.SavingsGoal:
		if value.GreaterThanOrEqual(c.TargetValue) {
			c.CurrentValue = c.TargetValue
			c.Status = domain.ChallengeSucceeded
			return c
		}
		c.CurrentValue = value
		if expired {
			c.Status = domain.ChallengeFailed
		}
	case domain.SpendingLimit:
		if value.GreaterThan(c.TargetValue) {
			c.CurrentValue = c.TargetValue
			c.Status = domain.ChallengeFailed
			return c
		}
		c.CurrentValue = value
		if expired {
			c.Status = domain.ChallengeSucceeded
		}
	}
	return c
}

// RefreshChallenges recomputes every active challenge from a fresh ledger
// snapshot, then settles the ones whose outcome is decided. A challenge
// whose window closed without success becomes FAILED, never silently
// re-activated.
func (s *gamificationService) RefreshChallenges(ctx context.Context, userID string, now time.Time) error {
	active, err := s.gamificationRepo.ListActiveChallenges(ctx, userID)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return nil
	}

	entries, err := s.ledgerRepo.ListEntries(ctx, userID, portsrepo.LedgerFilters{})
	if err != nil {
		return err
	}

	for _, c := range active {
		updated := resolveChallenge(c, challengeValue(c, entries), now)
		if updated.CurrentValue.Equal(c.CurrentValue) && updated.Status == c.Status {
			continue
		}
		updated.Touch(userID, now)
		if err := s.gamificationRepo.UpdateChallengeProgress(ctx, updated); err != nil {
			s.LogError(ctx, err, "Failed to persist challenge progress", slog.String("challenge_id", c.ChallengeID))
			continue
		}
		if updated.Status != c.Status {
			s.notifyChallengeOutcome(ctx, updated)
		}
	}

	return nil
}

func (s *gamificationService) notifyChallengeOutcome(ctx context.Context, c domain.Challenge) {
	if s.notifier == nil {
		return
	}
	switch c.Status {
	case domain.ChallengeSucceeded:
		s.notifier.Emit(ctx, c.UserID, domain.NotificationChallengeSucceeded,
			"Challenge completed!",
			fmt.Sprintf("You completed %q.", c.Name),
			map[string]string{"challengeID": c.ChallengeID})
	case domain.ChallengeFailed:
		s.notifier.Emit(ctx, c.UserID, domain.NotificationChallengeFailed,
			"Challenge over",
			fmt.Sprintf("%q ended without completion.", c.Name),
			map[string]string{"challengeID": c.ChallengeID})
	}
}
