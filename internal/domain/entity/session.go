package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one authenticated browser session. The ID is the opaque handle
// carried (signed) in the session cookie; nothing about the user is derivable
// from the handle itself.
type Session struct {
	ID        uuid.UUID // Opaque session handle.
	UserID    uuid.UUID // The authenticated user.
	ExpiresAt time.Time // Hard expiry. Expired sessions are treated as absent.
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
