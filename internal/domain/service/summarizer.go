package service

import (
	"context"
)

// MeetingDetails carries the event fields a summary is generated from.
// Title and Time are required; the rest are optional hints.
type MeetingDetails struct {
	Title       string
	Time        string
	Duration    string
	Attendees   []string
	Description string
}

// Summarizer defines the interface for producing a short natural-language
// summary of a meeting. Implementations must not fail the request when the
// backing model is unavailable; they fall back to a deterministic summary.
type Summarizer interface {
	// Summarize returns a summary for the meeting.
	Summarize(ctx context.Context, details *MeetingDetails) (string, error)
}
