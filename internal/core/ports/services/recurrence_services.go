package services

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// RecurrenceSvcFacade turns recurring templates into concrete ledger entries.
// It is invoked opportunistically (the client calls it on app foreground);
// there is no background scheduler.
type RecurrenceSvcFacade interface {
	// AdvanceDueTemplates materializes one leaf entry per due cycle for every
	// template whose nextDueDate <= now, advancing each template's schedule
	// pointer. Per-template failures are collected in the result instead of
	// aborting the batch. Running it again with no time elapsed creates
	// nothing.
	AdvanceDueTemplates(ctx context.Context, userID string, now time.Time) (*dto.RecurrenceRunResponse, error)
}
