package usecase

import (
	"context"
)

// --- Input DTOs ---

// SummaryInput defines the meeting fields a summary is generated from.
type SummaryInput struct {
	Title       string
	Time        string
	Duration    string
	Attendees   []string
	Description string
}

// SummaryUsecase defines the interface for meeting summarization.
type SummaryUsecase interface {
	// GenerateSummary produces a short natural-language summary.
	GenerateSummary(ctx context.Context, input SummaryInput) (string, error)
}
