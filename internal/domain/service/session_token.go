package service

import (
	"github.com/google/uuid"
)

// SessionTokenService defines the interface for signing and verifying the
// session handle carried in the browser cookie. The token binds nothing but
// the opaque session ID; user resolution happens against storage.
type SessionTokenService interface {
	// Sign produces a signed token embedding the session handle.
	Sign(sessionID uuid.UUID) (string, error)

	// Verify checks the token signature and returns the embedded handle.
	Verify(token string) (uuid.UUID, error)
}
