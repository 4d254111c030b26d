// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agenda/internal/delivery/http/middleware"
	"agenda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CalendarHandler   *handler.CalendarHandler
	SummaryHandler    *handler.SummaryHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	calendarHandler   *handler.CalendarHandler
	summaryHandler    *handler.SummaryHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		calendarHandler:   params.CalendarHandler,
		summaryHandler:    params.SummaryHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// OAuth routes, reachable without a session
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// API routes that require an authenticated session
	apiGroup := e.Group("/api")
	apiGroup.Use(r.sessionMiddleware.Authenticate)
	{
		apiGroup.GET("/me", r.authHandler.Me)
		apiGroup.GET("/calendar/meetings", r.calendarHandler.Meetings)
		apiGroup.GET("/calendar/stored", r.calendarHandler.Stored)
		apiGroup.POST("/calendar/sync", r.calendarHandler.Sync)
		apiGroup.POST("/summary", r.summaryHandler.Summarize)
	}
}
