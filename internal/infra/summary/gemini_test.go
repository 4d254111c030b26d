package summary

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeminiSummarizer_Summarize_Success(t *testing.T) {
	var gotPath string
	var gotPrompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		gotPrompt = req.Contents[0].Parts[0].Text

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "Short summary."}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	summarizer := NewGeminiSummarizer("test-key", "", server.URL, discardLogger())
	details := &service.MeetingDetails{Title: "Standup", Time: "2025-03-10T09:00:00Z"}

	summary, err := summarizer.Summarize(context.Background(), details)

	require.NoError(t, err)
	assert.Equal(t, "Short summary.", summary)
	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Contains(t, gotPrompt, "Title: Standup.")
}

func TestGeminiSummarizer_Summarize_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	summarizer := NewGeminiSummarizer("test-key", "", server.URL, discardLogger())

	summary, err := summarizer.Summarize(context.Background(), &service.MeetingDetails{Title: "A", Time: "B"})

	require.Error(t, err)
	assert.Empty(t, summary)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiSummarizer_Summarize_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	summarizer := NewGeminiSummarizer("test-key", "", server.URL, discardLogger())

	summary, err := summarizer.Summarize(context.Background(), &service.MeetingDetails{Title: "A", Time: "B"})

	require.Error(t, err)
	assert.Empty(t, summary)
}

func TestFallbackSummarizer_UsesExtractiveOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	summarizer := &fallbackSummarizer{
		primary:  NewGeminiSummarizer("test-key", "", server.URL, discardLogger()),
		fallback: NewExtractiveSummarizer(),
		logger:   discardLogger(),
	}

	summary, err := summarizer.Summarize(context.Background(), &service.MeetingDetails{
		Title: "Planning",
		Time:  "2025-03-10T14:00:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, "Title: Planning. Time: 2025-03-10T14:00:00Z.", summary)
}
