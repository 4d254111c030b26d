// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"agenda/config"
	"agenda/internal/domain/service"
)

// ErrInvalidSessionToken is returned when a cookie token fails signature or
// claim validation.
var ErrInvalidSessionToken = errors.New("invalid session token")

// sessionTokenService signs the opaque session handle into a compact JWT for
// the browser cookie. The token carries nothing but the handle; the session
// row in storage stays authoritative for expiry and user binding.
type sessionTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &sessionTokenService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Sign produces a signed token embedding the session handle.
func (s *sessionTokenService) Sign(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks the token signature and returns the embedded session handle.
func (s *sessionTokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidSessionToken
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidSessionToken
	}

	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return uuid.Nil, ErrInvalidSessionToken
	}

	return sessionID, nil
}
