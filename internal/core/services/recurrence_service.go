package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_backend/internal/apperrors"
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_backend/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/pocketfin/pocketfin_backend/internal/utils/recurrence"
)

// maxCyclesPerTemplate caps a single catch-up run so a template with a
// corrupt schedule cannot spin forever.
const maxCyclesPerTemplate = 1000

type recurrenceService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	notifier   portssvc.NotificationSink
}

// NewRecurrenceService creates the recurrence engine. notifier may be nil.
func NewRecurrenceService(ledgerRepo portsrepo.LedgerRepositoryFacade, notifier portssvc.NotificationSink) portssvc.RecurrenceSvcFacade {
	return &recurrenceService{
		ledgerRepo: ledgerRepo,
		notifier:   notifier,
	}
}

var _ portssvc.RecurrenceSvcFacade = (*recurrenceService)(nil)

// AdvanceDueTemplates materializes one leaf entry per elapsed cycle for
// every due template. Each cycle commits independently, so the run is
// idempotent: re-running with no time elapsed finds nothing due. Failures
// are collected per template; one bad template never blocks the rest.
func (s *recurrenceService) AdvanceDueTemplates(ctx context.Context, userID string, now time.Time) (*dto.RecurrenceRunResponse, error) {
	templates, err := s.ledgerRepo.ListDueTemplates(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due templates: %w", err)
	}

	resp := &dto.RecurrenceRunResponse{}
	for _, tmpl := range templates {
		created, err := s.advanceTemplate(ctx, tmpl, now)
		resp.Created += created
		if err != nil {
			s.LogError(ctx, err, "Failed to advance recurring template",
				slog.String("template_id", tmpl.TransactionID))
			resp.Failures = append(resp.Failures, dto.TemplateFailure{
				TemplateID: tmpl.TransactionID,
				Error:      err.Error(),
			})
		}
	}

	if resp.Created > 0 {
		s.LogInfo(ctx, "Recurring templates advanced",
			slog.String("user_id", userID),
			slog.Int("created", resp.Created),
			slog.Int("failed", len(resp.Failures)))
		if s.notifier != nil {
			s.notifier.Emit(ctx, userID, domain.NotificationRecurringSpawned,
				"Recurring transactions added",
				fmt.Sprintf("%d recurring transaction(s) were added to your ledger.", resp.Created),
				map[string]string{"count": fmt.Sprintf("%d", resp.Created)})
		}
	}

	return resp, nil
}

// advanceTemplate walks one template's schedule up to now, spawning one leaf
// per elapsed cycle. Each leaf is dated with the cycle's due date, not the
// run time, so a catch-up after a long absence backfills history correctly.
func (s *recurrenceService) advanceTemplate(ctx context.Context, tmpl domain.Transaction, now time.Time) (int, error) {
	if tmpl.NextDueDate == nil {
		return 0, fmt.Errorf("template has no schedule pointer: %w", apperrors.ErrValidation)
	}

	created := 0
	due := *tmpl.NextDueDate
	for cycles := 0; !due.After(now); cycles++ {
		if cycles >= maxCyclesPerTemplate {
			return created, fmt.Errorf("gave up after %d cycles: %w", maxCyclesPerTemplate, apperrors.ErrValidation)
		}

		nextDue, err := recurrence.AddPeriod(due, tmpl.Frequency)
		if err != nil {
			return created, err
		}

		leaf := s.buildLeaf(tmpl, due, now)
		err = s.ledgerRepo.SpawnAndAdvance(ctx, leaf, leaf.SignedAmount(), tmpl.TransactionID, due, nextDue)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				// Another runner advanced this template concurrently. Its
				// cycles are accounted for; nothing more to do here.
				return created, nil
			}
			return created, err
		}

		created++
		due = nextDue
	}

	return created, nil
}

func (s *recurrenceService) buildLeaf(tmpl domain.Transaction, due time.Time, now time.Time) domain.Transaction {
	templateID := tmpl.TransactionID
	return domain.Transaction{
		TransactionID:    uuid.NewString(),
		UserID:           tmpl.UserID,
		Name:             tmpl.Name,
		Amount:           tmpl.Amount,
		Category:         tmpl.Category,
		Type:             tmpl.Type,
		TransactionDate:  due,
		AccountID:        tmpl.AccountID,
		PaymentMethod:    tmpl.PaymentMethod,
		IsRecurring:      false,
		ParentTemplateID: &templateID,
		AuditFields:      domain.NewAuditFields(tmpl.UserID, now),
	}
}
