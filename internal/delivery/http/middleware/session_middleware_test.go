package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/config"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	mockUsecase "agenda/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sessionTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "agenda_session",
		},
	}
}

func newSessionRequest(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/stored", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionMiddleware_Authenticate_Success(t *testing.T) {
	t.Parallel()

	auth := mockUsecase.NewMockAuthUsecase(t)
	m := NewSessionMiddleware(auth, sessionTestConfig())

	user := &entity.User{ID: uuid.New(), Name: "Test User", Email: "test@example.com"}
	auth.EXPECT().Authenticate(mock.Anything, "valid-token").Return(user, nil)

	c, rec := newSessionRequest(&http.Cookie{Name: "agenda_session", Value: "valid-token"})

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, user, CurrentUser(c))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddleware_Authenticate_MissingCookie(t *testing.T) {
	t.Parallel()

	auth := mockUsecase.NewMockAuthUsecase(t)
	m := NewSessionMiddleware(auth, sessionTestConfig())

	c, rec := newSessionRequest(nil)

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authenticated")
}

func TestSessionMiddleware_Authenticate_EmptyCookie(t *testing.T) {
	t.Parallel()

	auth := mockUsecase.NewMockAuthUsecase(t)
	m := NewSessionMiddleware(auth, sessionTestConfig())

	c, rec := newSessionRequest(&http.Cookie{Name: "agenda_session", Value: ""})

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_Authenticate_ExpiredSession(t *testing.T) {
	t.Parallel()

	auth := mockUsecase.NewMockAuthUsecase(t)
	m := NewSessionMiddleware(auth, sessionTestConfig())

	auth.EXPECT().Authenticate(mock.Anything, "stale-token").
		Return(nil, domainerrors.ErrSessionExpired)

	c, rec := newSessionRequest(&http.Cookie{Name: "agenda_session", Value: "stale-token"})

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired session")
}

func TestCurrentUser_ReturnsNilWithoutAuthentication(t *testing.T) {
	t.Parallel()

	c, _ := newSessionRequest(nil)

	assert.Nil(t, CurrentUser(c))
}
