package middleware

import (
	"net/http"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
)

// currentUserKey is the Echo context key holding the authenticated user.
const currentUserKey = "current_user"

// SessionMiddleware authenticates requests through the session cookie.
type SessionMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		auth:       auth,
		cookieName: cfg.Session.CookieName,
	}
}

// Authenticate resolves the session cookie to a user and rejects the request
// with 401 when the cookie is absent, invalid or expired.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		}

		user, err := m.auth.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired session"})
		}

		// Set user info on the context for handlers to use
		c.Set(currentUserKey, user)
		deliverycontext.SetUserID(c, user.ID)

		return next(c)
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(currentUserKey).(*entity.User); ok {
		return user
	}

	return nil
}
