package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is the canonical, provider-agnostic representation of one
// remote calendar entry. Its external identity is the (GoogleEventID, UserID)
// pair; every re-sync fully overwrites the mutable fields with the latest
// provider values — there is no per-field merge.
type CalendarEvent struct {
	ID            uuid.UUID  // Local primary key.
	UserID        uuid.UUID  // Owner of this record.
	GoogleEventID string     // The provider's immutable event identifier.
	Title         *string    // Event summary. Nil when the provider omitted it.
	Description   *string    // Event description. Nil when the provider omitted it.
	StartTime     *time.Time // Effective start. Nil for unscheduled entries; date-only for all-day events.
	EndTime       *time.Time // Effective end. Nil when the provider omitted it.
	Attendees     []Attendee // Ordered attendee list. May be empty.
	CreatedAt     time.Time  // Timestamp of the first sync that observed this event.
	UpdatedAt     time.Time  // Timestamp of the last sync that re-observed it.
}

// Attendee describes one participant of an event. Email is the only field
// the provider guarantees.
type Attendee struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"`
	Organizer      bool   `json:"organizer,omitempty"`
}
