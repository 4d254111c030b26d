// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, created on the first successful
// Google sign-in and overwritten with the provider's latest profile data on
// every subsequent one. The provider is authoritative for every field here.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	GoogleID     string    // Google's immutable account identifier (the 'sub'/'id' from userinfo). Unique.
	Name         string    // The user's display name as reported by Google.
	Email        string    // The user's primary email as reported by Google.
	AccessToken  string    // The current OAuth access token for calendar reads.
	RefreshToken *string   // The current refresh token. Nil when Google withheld it on re-consent.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// HasRefreshToken reports whether a refresh token is available for this user.
// Without one, an expired access token cannot be renewed and the user must
// restart the consent flow.
func (u *User) HasRefreshToken() bool {
	return u.RefreshToken != nil && *u.RefreshToken != ""
}
