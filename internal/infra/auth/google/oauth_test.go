package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"agenda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oauthTestConfig(tokenURL, userInfoURL string) *config.Config {
	cfg := &config.Config{}
	cfg.GoogleOAuth = &config.GoogleOAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/auth/google/callback",
		TokenURL:     tokenURL,
		UserInfoURL:  userInfoURL,
	}

	return cfg
}

func TestOAuthService_BuildAuthorizationURL(t *testing.T) {
	svc := NewOAuthService(oauthTestConfig("", ""))

	raw := svc.BuildAuthorizationURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.Equal(t, "state-123", query.Get("state"))
	assert.Contains(t, query.Get("scope"), "calendar.readonly")
}

func TestOAuthService_StateValidatesAtMostOnce(t *testing.T) {
	svc := NewOAuthService(oauthTestConfig("", ""))

	state, err := svc.GenerateState()
	require.NoError(t, err)
	require.NotEmpty(t, state)

	assert.True(t, svc.ValidateState(state))
	assert.False(t, svc.ValidateState(state), "a state must not validate twice")
	assert.False(t, svc.ValidateState("never-issued"))
}

func TestOAuthService_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "code-abc", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-token","refresh_token":"refresh-token","token_type":"Bearer","expires_in":3599}`))
	}))
	defer server.Close()

	svc := NewOAuthService(oauthTestConfig(server.URL, ""))

	pair, err := svc.ExchangeCode(context.Background(), "code-abc")

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	require.NotNil(t, pair.RefreshToken)
	assert.Equal(t, "refresh-token", *pair.RefreshToken)
}

func TestOAuthService_ExchangeCode_WithheldRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-token","token_type":"Bearer","expires_in":3599}`))
	}))
	defer server.Close()

	svc := NewOAuthService(oauthTestConfig(server.URL, ""))

	pair, err := svc.ExchangeCode(context.Background(), "code-abc")

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Nil(t, pair.RefreshToken)
}

func TestOAuthService_RefreshAccessToken_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	svc := NewOAuthService(oauthTestConfig(server.URL, ""))

	token, err := svc.RefreshAccessToken(context.Background(), "revoked")

	require.Error(t, err)
	assert.Empty(t, token)
}

func TestOAuthService_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"google-123","email":"user@example.com","name":"User"}`))
	}))
	defer server.Close()

	svc := NewOAuthService(oauthTestConfig("", server.URL))

	profile, err := svc.FetchProfile(context.Background(), "access-token")

	require.NoError(t, err)
	assert.Equal(t, "google-123", profile.ID)
	assert.Equal(t, "user@example.com", profile.Email)
	assert.Equal(t, "User", profile.Name)
}
