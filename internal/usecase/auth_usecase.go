// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agenda/internal/domain/entity"
)

// --- Output DTOs ---

// LoginOutput returns the result of a completed OAuth login.
type LoginOutput struct {
	SessionToken string       // Signed token for the session cookie.
	RedirectURL  string       // Where to send the browser next.
	User         *entity.User // The bound user.
	Synced       int          // Events written by the post-login sync.
}

// AuthUsecase defines the interface for login, session and logout operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// BeginLogin mints a CSRF state and returns the provider consent URL.
	BeginLogin(ctx context.Context) (string, error)

	// CompleteLogin validates the callback, binds the Google identity to a
	// local user, opens a session and runs one synchronous calendar sync.
	// A failed sync fails the request; the binding and session persist, so
	// a later retry needs no new consent.
	CompleteLogin(ctx context.Context, state, code string) (*LoginOutput, error)

	// Authenticate resolves a session cookie token to its user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// Logout removes the session behind the cookie token.
	Logout(ctx context.Context, token string) error
}
