package impl

import (
	"context"
	"log/slog"

	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/pkg/errors"
)

// summaryService implements the SummaryUsecase interface.
type summaryService struct {
	summarizer service.Summarizer
	logger     *slog.Logger
}

// NewSummaryService is the constructor for summaryService.
func NewSummaryService(
	summarizer service.Summarizer,
	logger *slog.Logger,
) usecase.SummaryUsecase {
	return &summaryService{
		summarizer: summarizer,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *summaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateSummary produces a short natural-language summary of the meeting.
func (srv *summaryService) GenerateSummary(ctx context.Context, input usecase.SummaryInput) (string, error) {
	if input.Title == "" || input.Time == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "title and time are required")
	}

	result, err := srv.summarizer.Summarize(ctx, &service.MeetingDetails{
		Title:       input.Title,
		Time:        input.Time,
		Duration:    input.Duration,
		Attendees:   input.Attendees,
		Description: input.Description,
	})
	if err != nil {
		srv.log(ctx).Error("Summary generation failed", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrSummaryFailed, err.Error())
	}

	return result, nil
}
