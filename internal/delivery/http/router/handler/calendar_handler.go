package handler

import (
	"net/http"
	"strconv"
	"time"

	"agenda/internal/delivery/http/middleware"
	"agenda/internal/delivery/http/response"
	"agenda/internal/domain/entity"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CalendarHandler serves the calendar read and sync endpoints.
type CalendarHandler struct {
	calendar usecase.CalendarUsecase
	sync     usecase.SyncUsecase
}

// NewCalendarHandler is the constructor for CalendarHandler, injected by Fx.
func NewCalendarHandler(calendar usecase.CalendarUsecase, sync usecase.SyncUsecase) *CalendarHandler {
	return &CalendarHandler{
		calendar: calendar,
		sync:     sync,
	}
}

// eventResponse is the JSON shape of a stored calendar event.
type eventResponse struct {
	ID            string            `json:"id"`
	GoogleEventID string            `json:"googleEventId"`
	Title         *string           `json:"title"`
	Description   *string           `json:"description"`
	StartTime     *time.Time        `json:"startTime"`
	EndTime       *time.Time        `json:"endTime"`
	Attendees     []entity.Attendee `json:"attendees"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func toEventResponses(events []*entity.CalendarEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, eventResponse{
			ID:            event.ID.String(),
			GoogleEventID: event.GoogleEventID,
			Title:         event.Title,
			Description:   event.Description,
			StartTime:     event.StartTime,
			EndTime:       event.EndTime,
			Attendees:     event.Attendees,
			UpdatedAt:     event.UpdatedAt,
		})
	}

	return out
}

// Meetings returns the user's stored meetings, newest first.
func (h *CalendarHandler) Meetings(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not authenticated")
	}

	events, err := h.calendar.Meetings(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"events": toEventResponses(events),
	}, "")
}

// Stored returns the user's stored events with an optional limit query
// parameter, defaulting to 50 and capped at 200.
func (h *CalendarHandler) Stored(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not authenticated")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		limit = parsed
	}

	events, err := h.calendar.StoredEvents(c.Request().Context(), user.ID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"events": toEventResponses(events),
		"count":  len(events),
	}, "")
}

// Sync re-runs the calendar synchronization for the current user and
// reports how many events were written.
func (h *CalendarHandler) Sync(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not authenticated")
	}

	output, err := h.sync.SyncCalendar(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"processed": output.Processed,
	}, "Calendar synchronized")
}
