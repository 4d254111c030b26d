package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	fetch     usecase.FetchUsecase
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(
	fetch usecase.FetchUsecase,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		fetch:     fetch,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncCalendar fetches both windows and reconciles them into storage.
// Entries without a provider event ID are skipped. Each key is written in
// its own transaction: the upsert on (user, provider event id) is
// independently idempotent, so a mid-batch failure aborts the run but
// leaves the keys already written committed and safely re-syncable.
func (srv *syncService) SyncCalendar(ctx context.Context, userID uuid.UUID) (*usecase.SyncOutput, error) {
	windows, err := srv.fetch.FetchWindows(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	merged := make([]service.RawEvent, 0, len(windows.Past)+len(windows.Upcoming))
	merged = append(merged, windows.Past...)
	merged = append(merged, windows.Upcoming...)

	processed := 0
	skipped := 0

	for _, raw := range merged {
		if raw.ID == "" {
			skipped++

			continue
		}

		event := toCalendarEvent(raw, userID)

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewEventRepository().Upsert(ctx, event)
		})
		if err != nil {
			srv.log(ctx).Error("Calendar sync aborted",
				slog.Any("user_id", userID),
				slog.String("google_event_id", raw.ID),
				slog.Int("committed", processed),
				slog.Any("error", err),
			)

			return nil, errors.Wrapf(err, "failed to upsert event %s", raw.ID)
		}
		processed++
	}

	if skipped > 0 {
		srv.log(ctx).Warn("Skipped events without provider ID",
			slog.Any("user_id", userID),
			slog.Int("skipped", skipped),
		)
	}

	srv.publishCompletion(ctx, userID, processed)

	srv.log(ctx).Info("Calendar sync completed",
		slog.Any("user_id", userID),
		slog.Int("processed", processed),
	)

	return &usecase.SyncOutput{Processed: processed}, nil
}

// publishCompletion notifies async consumers. Publishing is best effort; a
// broker outage never fails a finished sync.
func (srv *syncService) publishCompletion(ctx context.Context, userID uuid.UUID, processed int) {
	event := &service.SyncCompletedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    userID.String(),
		Processed: processed,
		SyncedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishSyncCompleted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish sync completion",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)
	}
}

// toCalendarEvent converts a provider event to the canonical entity. Empty
// provider strings become nil so storage keeps absent and empty apart.
func toCalendarEvent(raw service.RawEvent, userID uuid.UUID) *entity.CalendarEvent {
	event := &entity.CalendarEvent{
		UserID:        userID,
		GoogleEventID: raw.ID,
		StartTime:     raw.Start.Resolve(),
		EndTime:       raw.End.Resolve(),
	}

	if raw.Summary != "" {
		title := raw.Summary
		event.Title = &title
	}
	if raw.Description != "" {
		description := raw.Description
		event.Description = &description
	}

	for _, a := range raw.Attendees {
		event.Attendees = append(event.Attendees, entity.Attendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			ResponseStatus: a.ResponseStatus,
			Organizer:      a.Organizer,
		})
	}

	return event
}
