package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CredentialUsecase defines the interface for OAuth credential access.
// It owns the stored tokens of a user: handing out the current access token
// and performing the single refresh attempt when the provider rejects it.
type CredentialUsecase interface {
	// AccessToken returns the stored access token of the user.
	AccessToken(ctx context.Context, userID uuid.UUID) (string, error)

	// Refresh exchanges the stored refresh token for a new access token and
	// persists it. Without a stored refresh token it fails with the
	// reauthentication-required domain error.
	Refresh(ctx context.Context, userID uuid.UUID) (string, error)
}
