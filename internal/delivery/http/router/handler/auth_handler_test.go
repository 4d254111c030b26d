package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda/config"
	mockUsecase "agenda/internal/mocks/usecase"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "agenda_session",
			TTL:        7 * 24 * time.Hour,
		},
	}
}

func newAuthRequest(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_GoogleLogin_ReturnsOAuthURL(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, authTestConfig())

	uc.EXPECT().BeginLogin(mock.Anything).
		Return("https://accounts.google.com/o/oauth2/v2/auth?client_id=test_client_id&state=abc", nil)

	c, rec := newAuthRequest(http.MethodGet, "/auth/google")

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "oauth_url")
	assert.Contains(t, responseBody, "test_client_id")
	assert.Contains(t, responseBody, "state")
}

func TestAuthHandler_GoogleLogin_RedirectsWhenRequested(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, authTestConfig())

	uc.EXPECT().BeginLogin(mock.Anything).
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=abc", nil)

	c, rec := newAuthRequest(http.MethodGet, "/auth/google?redirect=true")

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_RequiresCode(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, authTestConfig())

	c, rec := newAuthRequest(http.MethodGet, "/auth/google/callback?state=abc")

	require.NoError(t, h.GoogleCallback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization code is required")
}

func TestAuthHandler_GoogleCallback_SetsCookieAndRedirects(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, authTestConfig())

	uc.EXPECT().CompleteLogin(mock.Anything, "state-1", "code-1").
		Return(&usecase.LoginOutput{
			SessionToken: "signed-token",
			RedirectURL:  "http://localhost:3000/dashboard",
			Synced:       5,
		}, nil)

	c, rec := newAuthRequest(http.MethodGet, "/auth/google/callback?state=state-1&code=code-1")

	require.NoError(t, h.GoogleCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:3000/dashboard", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "agenda_session", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, authTestConfig())

	uc.EXPECT().Logout(mock.Anything, "signed-token").Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "agenda_session", Value: "signed-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestAuthHandler_Logout_WithoutCookieIsNoop(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, authTestConfig())

	c, rec := newAuthRequest(http.MethodPost, "/auth/logout")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
