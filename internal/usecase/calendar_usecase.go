package usecase

import (
	"context"

	"agenda/internal/domain/entity"

	"github.com/google/uuid"
)

// CalendarUsecase defines the interface for reading synced events from
// local storage.
type CalendarUsecase interface {
	// Meetings returns the user's synced events, most recent start first.
	Meetings(ctx context.Context, userID uuid.UUID) ([]*entity.CalendarEvent, error)

	// StoredEvents returns up to limit synced events, most recent start
	// first. A non-positive limit falls back to the default; limits above
	// the cap are clamped.
	StoredEvents(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CalendarEvent, error)
}
