package repository

import (
	"context"

	"agenda/internal/domain/entity"
	"agenda/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session exists for the given handle.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the standard operations for session persistence.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its opaque handle.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
