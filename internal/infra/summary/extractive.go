// Package summary provides summarizer implementations for meeting details.
package summary

import (
	"context"
	"fmt"
	"strings"

	"agenda/internal/domain/service"
)

// extractiveSummarizer produces a deterministic summary without any model
// backend: the first two sentences of the meeting text.
type extractiveSummarizer struct{}

// NewExtractiveSummarizer creates the deterministic fallback summarizer.
func NewExtractiveSummarizer() service.Summarizer {
	return &extractiveSummarizer{}
}

// Summarize returns the first two sentences of the meeting text.
func (s *extractiveSummarizer) Summarize(_ context.Context, details *service.MeetingDetails) (string, error) {
	return ExtractSummary(FormatMeetingText(details)), nil
}

// FormatMeetingText renders the meeting details into the text a summary is
// generated from. Absent fields are rendered as "Not specified" so the text
// shape stays stable.
func FormatMeetingText(details *service.MeetingDetails) string {
	duration := details.Duration
	if duration == "" {
		duration = "Not specified"
	}

	attendees := "Not specified"
	if len(details.Attendees) > 0 {
		attendees = strings.Join(details.Attendees, ", ")
	}

	description := details.Description
	if description == "" {
		description = "No description provided"
	}

	return fmt.Sprintf("Title: %s. Time: %s. Duration: %s. Attendees: %s. Description: %s",
		details.Title, details.Time, duration, attendees, description)
}

// ExtractSummary returns the first two sentences of the text. Sentences end
// at '.', '!' or '?'; text without terminators counts as one sentence.
func ExtractSummary(text string) string {
	sentences := splitSentences(text)
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}

	return strings.TrimSpace(strings.Join(sentences, " "))
}

// splitSentences breaks text into sentences, keeping the terminators.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		return []string{strings.TrimSpace(text)}
	}

	return sentences
}
