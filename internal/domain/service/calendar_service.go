package service

import (
	"context"
	"errors"
	"time"
)

// ErrCredentialExpired is returned by a CalendarSource when the provider
// rejected the access token. The caller decides whether a refresh is possible.
var ErrCredentialExpired = errors.New("calendar credential expired")

// EventTime is the provider representation of an event boundary. Exactly one
// of DateTime (timed events) or Date (all-day events) is set; both may be
// empty on malformed entries.
type EventTime struct {
	DateTime *time.Time
	Date     *time.Time
}

// Resolve returns the effective instant of the boundary, preferring the
// timed value over the all-day date.
func (t EventTime) Resolve() *time.Time {
	if t.DateTime != nil {
		return t.DateTime
	}
	return t.Date
}

// RawAttendee is one attendee as reported by the provider.
type RawAttendee struct {
	Email          string
	DisplayName    string
	ResponseStatus string
	Organizer      bool
}

// RawEvent is one calendar entry as reported by the provider, before
// reconciliation. ID may be empty on malformed entries.
type RawEvent struct {
	ID          string
	Summary     string
	Description string
	Start       EventTime
	End         EventTime
	Attendees   []RawAttendee
}

// ListWindow describes one bounded query against the provider.
// Zero-valued TimeMin or TimeMax means unbounded on that side.
type ListWindow struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int
}

// CalendarSource defines the interface for reading events from a remote
// calendar provider on behalf of a user.
type CalendarSource interface {
	// ListEvents returns the events of the user's primary calendar within
	// the window, expanded to single instances and ordered by start time
	// ascending. Returns ErrCredentialExpired when the token was rejected.
	ListEvents(ctx context.Context, accessToken string, window ListWindow) ([]RawEvent, error)
}
