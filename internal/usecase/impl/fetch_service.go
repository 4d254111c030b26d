package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fetchService implements the FetchUsecase interface.
type fetchService struct {
	credentials    usecase.CredentialUsecase
	source         service.CalendarSource
	pastFetchLimit int
	windowSize     int
	logger         *slog.Logger
}

// NewFetchService is the constructor for fetchService.
func NewFetchService(
	credentials usecase.CredentialUsecase,
	source service.CalendarSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FetchUsecase {
	return &fetchService{
		credentials:    credentials,
		source:         source,
		pastFetchLimit: cfg.Sync.PastFetchLimit,
		windowSize:     cfg.Sync.WindowSize,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *fetchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchWindows reads the past and upcoming windows relative to now.
//
// The provider cannot sort descending, so the past window over-requests,
// filters to events that already started, sorts newest first and truncates.
// The upcoming window is requested at its final size and kept in provider
// order (soonest first).
func (srv *fetchService) FetchWindows(ctx context.Context, userID uuid.UUID, now time.Time) (*usecase.FetchOutput, error) {
	token, err := srv.credentials.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	fetch := &windowFetcher{srv: srv, userID: userID, token: token}

	pastRaw, err := fetch.list(ctx, service.ListWindow{
		TimeMax:    now,
		MaxResults: srv.pastFetchLimit,
	})
	if err != nil {
		return nil, err
	}

	upcoming, err := fetch.list(ctx, service.ListWindow{
		TimeMin:    now,
		MaxResults: srv.windowSize,
	})
	if err != nil {
		return nil, err
	}

	past := srv.selectPast(pastRaw, now)

	srv.log(ctx).Debug("Fetched calendar windows",
		slog.Any("user_id", userID),
		slog.Int("past", len(past)),
		slog.Int("upcoming", len(upcoming)),
	)

	return &usecase.FetchOutput{Past: past, Upcoming: upcoming}, nil
}

// selectPast keeps events that started strictly before now, newest first,
// truncated to the window size. Events without a resolvable start are dropped.
func (srv *fetchService) selectPast(events []service.RawEvent, now time.Time) []service.RawEvent {
	past := make([]service.RawEvent, 0, len(events))
	for _, ev := range events {
		start := ev.Start.Resolve()
		if start != nil && start.Before(now) {
			past = append(past, ev)
		}
	}

	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Start.Resolve().After(*past[j].Start.Resolve())
	})

	if len(past) > srv.windowSize {
		past = past[:srv.windowSize]
	}

	return past
}

// windowFetcher lists events with at most one token refresh shared across
// all windows of a fetch. A rejection after the refresh means the stored
// credentials are beyond repair for this run.
type windowFetcher struct {
	srv       *fetchService
	userID    uuid.UUID
	token     string
	refreshed bool
}

func (f *windowFetcher) list(ctx context.Context, window service.ListWindow) ([]service.RawEvent, error) {
	events, err := f.srv.source.ListEvents(ctx, f.token, window)
	if err == nil {
		return events, nil
	}

	if !errors.Is(err, service.ErrCredentialExpired) {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}

	if f.refreshed {
		return nil, errors.Wrap(domainerrors.ErrReauthRequired, "access token rejected after refresh")
	}

	token, err := f.srv.credentials.Refresh(ctx, f.userID)
	if err != nil {
		return nil, err
	}
	f.token = token
	f.refreshed = true

	events, err = f.srv.source.ListEvents(ctx, f.token, window)
	if err != nil {
		if errors.Is(err, service.ErrCredentialExpired) {
			return nil, errors.Wrap(domainerrors.ErrReauthRequired, "access token rejected after refresh")
		}

		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}

	return events, nil
}
