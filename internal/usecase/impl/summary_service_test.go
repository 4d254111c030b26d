package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"
	mockSvc "agenda/internal/mocks/service"
	"agenda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryService_GenerateSummary_Success(t *testing.T) {
	summarizer := mockSvc.NewMockSummarizer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSummaryService(summarizer, logger)

	ctx := context.Background()
	input := usecase.SummaryInput{
		Title:       "Quarterly Review",
		Time:        "2025-03-10T14:00:00Z",
		Duration:    "1h",
		Attendees:   []string{"alice@example.com", "bob@example.com"},
		Description: "Review the quarter.",
	}

	summarizer.EXPECT().
		Summarize(ctx, &service.MeetingDetails{
			Title:       input.Title,
			Time:        input.Time,
			Duration:    input.Duration,
			Attendees:   input.Attendees,
			Description: input.Description,
		}).
		Return("The team reviews the quarter.", nil)

	summary, err := svc.GenerateSummary(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "The team reviews the quarter.", summary)
}

func TestSummaryService_GenerateSummary_RequiresTitleAndTime(t *testing.T) {
	summarizer := mockSvc.NewMockSummarizer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSummaryService(summarizer, logger)

	cases := []struct {
		name  string
		input usecase.SummaryInput
	}{
		{name: "missing title", input: usecase.SummaryInput{Time: "2025-03-10T14:00:00Z"}},
		{name: "missing time", input: usecase.SummaryInput{Title: "Quarterly Review"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := svc.GenerateSummary(context.Background(), tc.input)

			require.Error(t, err)
			assert.Empty(t, summary)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestSummaryService_GenerateSummary_SummarizerFailure(t *testing.T) {
	summarizer := mockSvc.NewMockSummarizer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSummaryService(summarizer, logger)

	ctx := context.Background()
	input := usecase.SummaryInput{Title: "Quarterly Review", Time: "2025-03-10T14:00:00Z"}

	summarizer.EXPECT().
		Summarize(ctx, &service.MeetingDetails{Title: input.Title, Time: input.Time}).
		Return("", assert.AnError)

	summary, err := svc.GenerateSummary(ctx, input)

	require.Error(t, err)
	assert.Empty(t, summary)
	assert.ErrorIs(t, err, domainerrors.ErrSummaryFailed)
}
