package handler

import (
	"net/http"

	"agenda/internal/delivery/http/response"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SummaryHandler serves the meeting summarization endpoint.
type SummaryHandler struct {
	uc usecase.SummaryUsecase
}

// NewSummaryHandler is the constructor for SummaryHandler, injected by Fx.
func NewSummaryHandler(uc usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

type summaryRequest struct {
	Title       string   `json:"title" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	Duration    string   `json:"duration"`
	Attendees   []string `json:"attendees"`
	Description string   `json:"description"`
}

// Summarize generates a short natural-language summary for the submitted
// meeting details.
func (h *SummaryHandler) Summarize(c echo.Context) error {
	var req summaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Title and time are required")
	}

	summary, err := h.uc.GenerateSummary(c.Request().Context(), usecase.SummaryInput{
		Title:       req.Title,
		Time:        req.Time,
		Duration:    req.Duration,
		Attendees:   req.Attendees,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"summary": summary,
	}, "")
}
