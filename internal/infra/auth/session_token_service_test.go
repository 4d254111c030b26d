package auth

import (
	"testing"
	"time"

	"agenda/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret
	cfg.Session = &config.SessionConfig{TTL: time.Hour}

	return cfg
}

func TestSessionTokenService_SignVerifyRoundTrip(t *testing.T) {
	svc, err := NewSessionTokenService(tokenTestConfig("test-secret"))
	require.NoError(t, err)

	sessionID := uuid.New()

	token, err := svc.Sign(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestSessionTokenService_RejectsWrongSecret(t *testing.T) {
	signer, err := NewSessionTokenService(tokenTestConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewSessionTokenService(tokenTestConfig("secret-b"))
	require.NoError(t, err)

	token, err := signer.Sign(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestSessionTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewSessionTokenService(tokenTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token")
	require.Error(t, err)
}

func TestNewSessionTokenService_RequiresSecret(t *testing.T) {
	_, err := NewSessionTokenService(tokenTestConfig(""))
	require.Error(t, err)
}
