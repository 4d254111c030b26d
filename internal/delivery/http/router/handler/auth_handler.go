// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"agenda/config"
	"agenda/internal/delivery/http/middleware"
	"agenda/internal/delivery/http/response"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the OAuth login handlers.
type AuthHandler struct {
	uc  usecase.AuthUsecase
	cfg *config.SessionConfig
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:  uc,
		cfg: cfg.Session,
	}
}

// GoogleLogin starts the OAuth flow. Browsers get a redirect to the Google
// consent page; without redirect=true the URL is returned as JSON for
// frontend use.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	oauthURL, err := h.uc.BeginLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, oauthURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url":    oauthURL,
		"redirect_url": "/auth/google?redirect=true",
	}, "Google OAuth URL generated successfully")
}

// GoogleCallback completes the OAuth flow: it binds the Google identity,
// sets the session cookie, triggers the post-login sync and sends the
// browser to the dashboard.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Authorization code is required")
	}

	output, err := h.uc.CompleteLogin(c.Request().Context(), c.QueryParam("state"), code)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    output.SessionToken,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TTL),
		HttpOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// Logout removes the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cfg.CookieName); err == nil && cookie.Value != "" {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me returns the authenticated user's basic profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not authenticated")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":    user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
	}, "")
}
