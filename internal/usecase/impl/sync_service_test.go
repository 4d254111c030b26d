package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	mockRepo "agenda/internal/mocks/repository"
	mockSvc "agenda/internal/mocks/service"
	mockUC "agenda/internal/mocks/usecase"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncService_SyncCalendar_Success(t *testing.T) {
	fetch := mockUC.NewMockFetchUsecase(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(fetch, txManager, publisher, logger)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

	windows := &usecase.FetchOutput{
		Past: []service.RawEvent{
			{ID: "past-1", Summary: "Standup", Start: service.EventTime{DateTime: &start}},
		},
		Upcoming: []service.RawEvent{
			{ID: "up-1", Summary: "Planning"},
		},
	}

	fetch.EXPECT().
		FetchWindows(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(windows, nil)

	var upserted []*entity.CalendarEvent
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)
			mockEventRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.CalendarEvent")).
				Run(func(ctx context.Context, event *entity.CalendarEvent) {
					upserted = append(upserted, event)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	publisher.EXPECT().
		PublishSyncCompleted(ctx, mock.AnythingOfType("*service.SyncCompletedEvent")).
		Run(func(ctx context.Context, event *service.SyncCompletedEvent) {
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 2, event.Processed)
		}).
		Return(nil)

	out, err := svc.SyncCalendar(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, out.Processed)
	require.Len(t, upserted, 2)
	assert.Equal(t, "past-1", upserted[0].GoogleEventID)
	assert.Equal(t, userID, upserted[0].UserID)
	require.NotNil(t, upserted[0].Title)
	assert.Equal(t, "Standup", *upserted[0].Title)
	assert.Nil(t, upserted[0].Description)
	assert.Equal(t, "up-1", upserted[1].GoogleEventID)
	assert.Nil(t, upserted[1].StartTime)
}

func TestSyncService_SyncCalendar_SkipsEventsWithoutID(t *testing.T) {
	fetch := mockUC.NewMockFetchUsecase(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(fetch, txManager, publisher, logger)

	ctx := context.Background()
	userID := uuid.New()

	windows := &usecase.FetchOutput{
		Past: []service.RawEvent{
			{ID: "", Summary: "Malformed"},
			{ID: "kept", Summary: "Kept"},
		},
	}

	fetch.EXPECT().
		FetchWindows(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(windows, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)
			mockEventRepo.EXPECT().
				Upsert(ctx, mock.MatchedBy(func(event *entity.CalendarEvent) bool {
					return event.GoogleEventID == "kept"
				})).
				Return(nil).
				Once()

			_ = fn(mockFactory)
		}).
		Return(nil)

	publisher.EXPECT().
		PublishSyncCompleted(ctx, mock.AnythingOfType("*service.SyncCompletedEvent")).
		Return(nil)

	out, err := svc.SyncCalendar(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, out.Processed)
}

func TestSyncService_SyncCalendar_MidBatchFailureKeepsEarlierKeys(t *testing.T) {
	fetch := mockUC.NewMockFetchUsecase(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(fetch, txManager, publisher, logger)

	ctx := context.Background()
	userID := uuid.New()

	windows := &usecase.FetchOutput{
		Upcoming: []service.RawEvent{
			{ID: "first", Summary: "Committed"},
			{ID: "second", Summary: "Broken"},
			{ID: "third", Summary: "Never reached"},
		},
	}

	fetch.EXPECT().
		FetchWindows(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(windows, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockEventRepo := mockRepo.NewMockEventRepository(t)
	mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)

	var committed []string
	mockEventRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(event *entity.CalendarEvent) bool {
			return event.GoogleEventID == "first"
		})).
		Run(func(ctx context.Context, event *entity.CalendarEvent) {
			committed = append(committed, event.GoogleEventID)
		}).
		Return(nil).
		Once()
	mockEventRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(event *entity.CalendarEvent) bool {
			return event.GoogleEventID == "second"
		})).
		Return(assert.AnError).
		Once()

	// Each key runs through its own Execute call; the failing key's
	// transaction cannot roll the earlier one back.
	executeCalls := 0
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			executeCalls++

			return fn(mockFactory)
		})

	out, err := svc.SyncCalendar(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, out)
	assert.Equal(t, 2, executeCalls)
	assert.Equal(t, []string{"first"}, committed)
	publisher.AssertNotCalled(t, "PublishSyncCompleted", mock.Anything, mock.Anything)
}

func TestSyncService_SyncCalendar_FetchFailurePropagates(t *testing.T) {
	fetch := mockUC.NewMockFetchUsecase(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(fetch, txManager, publisher, logger)

	ctx := context.Background()
	userID := uuid.New()

	fetch.EXPECT().
		FetchWindows(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError)

	out, err := svc.SyncCalendar(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, out)
}

func TestSyncService_SyncCalendar_PublishFailureIsNotFatal(t *testing.T) {
	fetch := mockUC.NewMockFetchUsecase(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(fetch, txManager, publisher, logger)

	ctx := context.Background()
	userID := uuid.New()

	fetch.EXPECT().
		FetchWindows(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(&usecase.FetchOutput{
			Upcoming: []service.RawEvent{{ID: "up-1"}},
		}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)
			mockEventRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	publisher.EXPECT().
		PublishSyncCompleted(ctx, mock.Anything).
		Return(assert.AnError)

	out, err := svc.SyncCalendar(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, out.Processed)
}
