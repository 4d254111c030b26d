package summary

import (
	"context"
	"testing"

	"agenda/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSummary_FirstTwoSentences(t *testing.T) {
	text := "First sentence. Second sentence! Third sentence? Fourth."

	assert.Equal(t, "First sentence. Second sentence!", ExtractSummary(text))
}

func TestExtractSummary_ShortText(t *testing.T) {
	assert.Equal(t, "Only one sentence.", ExtractSummary("Only one sentence."))
	assert.Equal(t, "no terminator at all", ExtractSummary("no terminator at all"))
}

func TestFormatMeetingText_FillsAbsentFields(t *testing.T) {
	details := &service.MeetingDetails{
		Title: "Standup",
		Time:  "2025-03-10T09:00:00Z",
	}

	text := FormatMeetingText(details)

	assert.Equal(t,
		"Title: Standup. Time: 2025-03-10T09:00:00Z. Duration: Not specified. Attendees: Not specified. Description: No description provided",
		text)
}

func TestFormatMeetingText_JoinsAttendees(t *testing.T) {
	details := &service.MeetingDetails{
		Title:       "Planning",
		Time:        "2025-03-10T14:00:00Z",
		Duration:    "45m",
		Attendees:   []string{"alice@example.com", "bob@example.com"},
		Description: "Sprint planning.",
	}

	text := FormatMeetingText(details)

	assert.Contains(t, text, "Attendees: alice@example.com, bob@example.com")
	assert.Contains(t, text, "Duration: 45m")
}

func TestExtractiveSummarizer_Deterministic(t *testing.T) {
	summarizer := NewExtractiveSummarizer()
	details := &service.MeetingDetails{
		Title:       "Planning",
		Time:        "2025-03-10T14:00:00Z",
		Description: "Sprint planning.",
	}

	first, err := summarizer.Summarize(context.Background(), details)
	require.NoError(t, err)

	second, err := summarizer.Summarize(context.Background(), details)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Title: Planning. Time: 2025-03-10T14:00:00Z.", first)
}
