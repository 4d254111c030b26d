package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SyncOutput reports the result of one calendar sync.
type SyncOutput struct {
	// Processed counts the events written to storage. Entries without a
	// provider event ID are skipped and not counted.
	Processed int
}

// SyncUsecase defines the interface for synchronizing a user's calendar
// windows into local storage.
type SyncUsecase interface {
	// SyncCalendar fetches both windows and reconciles them into storage.
	// Re-running with unchanged provider data writes the same rows again
	// and changes nothing.
	SyncCalendar(ctx context.Context, userID uuid.UUID) (*SyncOutput, error)
}
