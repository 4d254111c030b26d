package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agenda/config"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"
	mockSvc "agenda/internal/mocks/service"
	mockUC "agenda/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchTestConfig(windowSize int) *config.Config {
	cfg := &config.Config{}
	cfg.Sync = &config.SyncConfig{
		PastFetchLimit:  50,
		WindowSize:      windowSize,
		ProviderTimeout: 10 * time.Second,
	}

	return cfg
}

func timedEvent(id string, start time.Time) service.RawEvent {
	return service.RawEvent{
		ID:    id,
		Start: service.EventTime{DateTime: &start},
	}
}

func TestFetchService_FetchWindows_Success(t *testing.T) {
	credentials := mockUC.NewMockCredentialUsecase(t)
	source := mockSvc.NewMockCalendarSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFetchService(credentials, source, fetchTestConfig(5), logger)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// The provider returns the past window ascending and may include events
	// that have not started yet; the service filters and reverses it.
	pastRaw := []service.RawEvent{
		timedEvent("old", now.Add(-72*time.Hour)),
		timedEvent("recent", now.Add(-24*time.Hour)),
		timedEvent("running-late", now.Add(time.Hour)),
		{ID: "no-start"},
	}
	upcomingRaw := []service.RawEvent{
		timedEvent("soon", now.Add(24*time.Hour)),
		timedEvent("later", now.Add(48*time.Hour)),
		timedEvent("next-week", now.Add(120*time.Hour)),
	}

	credentials.EXPECT().AccessToken(ctx, userID).Return("token", nil)
	source.EXPECT().
		ListEvents(ctx, "token", service.ListWindow{TimeMax: now, MaxResults: 50}).
		Return(pastRaw, nil)
	source.EXPECT().
		ListEvents(ctx, "token", service.ListWindow{TimeMin: now, MaxResults: 5}).
		Return(upcomingRaw, nil)

	out, err := svc.FetchWindows(ctx, userID, now)

	require.NoError(t, err)
	require.Len(t, out.Past, 2)
	assert.Equal(t, "recent", out.Past[0].ID)
	assert.Equal(t, "old", out.Past[1].ID)
	require.Len(t, out.Upcoming, 3)
	assert.Equal(t, "soon", out.Upcoming[0].ID)
}

func TestFetchService_FetchWindows_TruncatesPastWindow(t *testing.T) {
	credentials := mockUC.NewMockCredentialUsecase(t)
	source := mockSvc.NewMockCalendarSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFetchService(credentials, source, fetchTestConfig(2), logger)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	pastRaw := []service.RawEvent{
		timedEvent("a", now.Add(-96*time.Hour)),
		timedEvent("b", now.Add(-48*time.Hour)),
		timedEvent("c", now.Add(-24*time.Hour)),
	}

	credentials.EXPECT().AccessToken(ctx, userID).Return("token", nil)
	source.EXPECT().
		ListEvents(ctx, "token", service.ListWindow{TimeMax: now, MaxResults: 50}).
		Return(pastRaw, nil)
	source.EXPECT().
		ListEvents(ctx, "token", service.ListWindow{TimeMin: now, MaxResults: 2}).
		Return(nil, nil)

	out, err := svc.FetchWindows(ctx, userID, now)

	require.NoError(t, err)
	require.Len(t, out.Past, 2)
	assert.Equal(t, "c", out.Past[0].ID)
	assert.Equal(t, "b", out.Past[1].ID)
}

func TestFetchService_FetchWindows_RefreshesTokenOnce(t *testing.T) {
	credentials := mockUC.NewMockCredentialUsecase(t)
	source := mockSvc.NewMockCalendarSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFetchService(credentials, source, fetchTestConfig(5), logger)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	pastWindow := service.ListWindow{TimeMax: now, MaxResults: 50}
	upcomingWindow := service.ListWindow{TimeMin: now, MaxResults: 5}

	credentials.EXPECT().AccessToken(ctx, userID).Return("stale", nil)
	source.EXPECT().
		ListEvents(ctx, "stale", pastWindow).
		Return(nil, service.ErrCredentialExpired)
	credentials.EXPECT().Refresh(ctx, userID).Return("fresh", nil).Once()
	source.EXPECT().
		ListEvents(ctx, "fresh", pastWindow).
		Return([]service.RawEvent{timedEvent("recent", now.Add(-time.Hour))}, nil)
	source.EXPECT().
		ListEvents(ctx, "fresh", upcomingWindow).
		Return(nil, nil)

	out, err := svc.FetchWindows(ctx, userID, now)

	require.NoError(t, err)
	require.Len(t, out.Past, 1)
	assert.Equal(t, "recent", out.Past[0].ID)
}

func TestFetchService_FetchWindows_ReauthAfterFailedRefresh(t *testing.T) {
	credentials := mockUC.NewMockCredentialUsecase(t)
	source := mockSvc.NewMockCalendarSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFetchService(credentials, source, fetchTestConfig(5), logger)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	pastWindow := service.ListWindow{TimeMax: now, MaxResults: 50}

	credentials.EXPECT().AccessToken(ctx, userID).Return("stale", nil)
	source.EXPECT().
		ListEvents(ctx, "stale", pastWindow).
		Return(nil, service.ErrCredentialExpired)
	credentials.EXPECT().Refresh(ctx, userID).Return("fresh", nil)
	source.EXPECT().
		ListEvents(ctx, "fresh", pastWindow).
		Return(nil, service.ErrCredentialExpired)

	out, err := svc.FetchWindows(ctx, userID, now)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrReauthRequired)
}

func TestFetchService_FetchWindows_ProviderUnavailable(t *testing.T) {
	credentials := mockUC.NewMockCredentialUsecase(t)
	source := mockSvc.NewMockCalendarSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFetchService(credentials, source, fetchTestConfig(5), logger)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	credentials.EXPECT().AccessToken(ctx, userID).Return("token", nil)
	source.EXPECT().
		ListEvents(ctx, "token", service.ListWindow{TimeMax: now, MaxResults: 50}).
		Return(nil, context.DeadlineExceeded)

	out, err := svc.FetchWindows(ctx, userID, now)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
}
