package summary

import (
	"context"
	"log/slog"

	"agenda/config"
	"agenda/internal/domain/service"

	"go.uber.org/fx"
)

// fallbackSummarizer tries the primary summarizer and falls back to the
// deterministic one on any error, so a model outage never fails the request.
type fallbackSummarizer struct {
	primary  service.Summarizer
	fallback service.Summarizer
	logger   *slog.Logger
}

// Summarize returns the primary summary, or the fallback summary when the
// primary fails.
func (s *fallbackSummarizer) Summarize(ctx context.Context, details *service.MeetingDetails) (string, error) {
	result, err := s.primary.Summarize(ctx, details)
	if err == nil {
		return result, nil
	}

	s.logger.Warn("primary summarizer failed, using extractive fallback",
		slog.Any("error", err),
	)

	return s.fallback.Summarize(ctx, details)
}

// SummarizerParams holds dependencies for the Summarizer, injected by Fx
type SummarizerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSummarizer creates a Summarizer based on configuration. Without a Gemini
// API key only the deterministic extractive summarizer is used.
func NewSummarizer(params SummarizerParams) service.Summarizer {
	cfg := params.Config.Gemini
	extractive := NewExtractiveSummarizer()

	if cfg == nil || !cfg.Enabled || cfg.APIKey == "" {
		params.Logger.Info("Gemini not configured, using extractive summarizer")

		return extractive
	}

	params.Logger.Info("Using Gemini summarizer with extractive fallback",
		slog.String("model", cfg.Model),
	)

	return &fallbackSummarizer{
		primary:  NewGeminiSummarizer(cfg.APIKey, cfg.Model, cfg.BaseURL, params.Logger),
		fallback: extractive,
		logger:   params.Logger,
	}
}

// Module provides the summarizer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSummarizer),
)
