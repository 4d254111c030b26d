package service

import (
	"context"
)

// TokenPair holds the OAuth credentials returned by the provider.
// RefreshToken is nil when the provider withheld one (e.g. on repeated
// consent without prompt=consent).
type TokenPair struct {
	AccessToken  string
	RefreshToken *string
}

// OAuthProfile represents the identity information from the OAuth provider.
type OAuthProfile struct {
	ID    string // Provider-specific user ID (Google's 'sub' claim)
	Email string // User's email address
	Name  string // User's display name
}

// OAuthService defines the interface for the OAuth authorization-code flow.
type OAuthService interface {
	// BuildAuthorizationURL returns the provider consent URL carrying the
	// given anti-forgery state parameter.
	BuildAuthorizationURL(state string) string

	// GenerateState mints and records a new anti-forgery state value.
	GenerateState() (string, error)

	// ValidateState checks and consumes a state value previously minted by
	// GenerateState. A state validates at most once.
	ValidateState(state string) bool

	// ExchangeCode trades an authorization code for a token pair.
	ExchangeCode(ctx context.Context, code string) (*TokenPair, error)

	// RefreshAccessToken trades a refresh token for a fresh access token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)

	// FetchProfile retrieves the provider profile for an access token.
	FetchProfile(ctx context.Context, accessToken string) (*OAuthProfile, error)
}
