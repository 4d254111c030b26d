package impl

import (
	"context"
	"log/slog"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// eventQueryService implements the CalendarUsecase interface.
type eventQueryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewEventQueryService is the constructor for eventQueryService.
func NewEventQueryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CalendarUsecase {
	return &eventQueryService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventQueryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Meetings returns the user's synced events, most recent start first.
func (srv *eventQueryService) Meetings(ctx context.Context, userID uuid.UUID) ([]*entity.CalendarEvent, error) {
	return srv.StoredEvents(ctx, userID, 0)
}

// StoredEvents returns up to limit synced events, most recent start first.
// A non-positive limit falls back to the default; limits above the cap are
// clamped.
func (srv *eventQueryService) StoredEvents(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CalendarEvent, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var events []*entity.CalendarEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		events, err = repoFactory.NewEventRepository().ListByUser(ctx, userID, limit)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list stored events",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to list stored events")
	}

	return events, nil
}
