package repository

import (
	"context"

	"agenda/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRepository defines the standard operations for calendar event persistence.
// Events are identified externally by the (user, google event id) pair; Upsert
// must be idempotent with respect to that pair.
type EventRepository interface {
	// Upsert inserts the event, or fully overwrites the mutable fields of the
	// existing row with the same (UserID, GoogleEventID) pair.
	Upsert(ctx context.Context, event *entity.CalendarEvent) error

	// ListByUser returns up to limit events for the user, ordered by start
	// time descending with nulls last.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CalendarEvent, error)
}
