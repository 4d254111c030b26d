// Package google implements the OAuth authorization-code flow against
// Google's OAuth 2.0 endpoints.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"agenda/config"
	"agenda/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	// Scopes cover identity plus read-only calendar access.
	oauthScopes = "openid email profile https://www.googleapis.com/auth/calendar.readonly"

	stateTTL = 10 * time.Minute
)

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string

	authURL     string
	tokenURL    string
	userInfoURL string

	httpClient *http.Client

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Google OAuth service.
// Endpoint URLs default to the Google production endpoints and may be
// overridden through config for tests.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	svc := &OAuthService{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		authURL:      googleOAuthURL,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		stateStore:   make(map[string]time.Time),
	}

	if cfg.GoogleOAuth.AuthURL != "" {
		svc.authURL = cfg.GoogleOAuth.AuthURL
	}
	if cfg.GoogleOAuth.TokenURL != "" {
		svc.tokenURL = cfg.GoogleOAuth.TokenURL
	}
	if cfg.GoogleOAuth.UserInfoURL != "" {
		svc.userInfoURL = cfg.GoogleOAuth.UserInfoURL
	}

	return svc
}

// GenerateState mints a cryptographically secure random state string and
// records it for later validation.
func (s *OAuthService) GenerateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}
	state := hex.EncodeToString(bytes)

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)
	s.cleanupExpiredStates()

	return state, nil
}

// cleanupExpiredStates removes expired state parameters. Caller holds the lock.
func (s *OAuthService) cleanupExpiredStates() {
	now := time.Now()
	for state, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, state)
		}
	}
}

// BuildAuthorizationURL constructs the Google OAuth authorization URL carrying
// the state parameter for CSRF protection. The offline access type and consent
// prompt make Google return a refresh token on every authorization.
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", oauthScopes)
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)

	return s.authURL + "?" + params.Encode()
}

// ValidateState validates and consumes the state parameter to prevent CSRF
// attacks. A state validates at most once.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	// Remove used state to prevent replay attacks
	delete(s.stateStore, state)

	return !time.Now().After(expiry)
}

// ExchangeCode exchanges an authorization code for an access and refresh token.
// Google omits the refresh token on repeated consent; the pair carries nil then.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*service.TokenPair, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	var tokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
	}

	if err := s.postForm(ctx, data, &tokenResponse); err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	pair := &service.TokenPair{AccessToken: tokenResponse.AccessToken}
	if tokenResponse.RefreshToken != "" {
		pair.RefreshToken = &tokenResponse.RefreshToken
	}

	return pair, nil
}

// RefreshAccessToken trades a refresh token for a fresh access token.
func (s *OAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("refresh_token", refreshToken)
	data.Set("grant_type", "refresh_token")

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := s.postForm(ctx, data, &tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to refresh access token")
	}

	return tokenResponse.AccessToken, nil
}

// postForm posts url-encoded form data to the token endpoint and decodes the
// JSON response into out.
func (s *OAuthService) postForm(ctx context.Context, data url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to create token request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode token response")
	}

	return nil
}

// FetchProfile retrieves the user's Google profile using an access token.
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*service.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthProfile{
		ID:    googleUser.ID,
		Email: googleUser.Email,
		Name:  googleUser.Name,
	}, nil
}
