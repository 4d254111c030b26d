package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	mockRepo "agenda/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectListByUser(t *testing.T, txManager *mockRepo.MockTransactionManager, wantLimit int, events []*entity.CalendarEvent) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)
			mockEventRepo.EXPECT().
				ListByUser(ctx, mock.AnythingOfType("uuid.UUID"), wantLimit).
				Return(events, nil)

			return fn(mockFactory)
		})
}

func TestEventQueryService_StoredEvents_DefaultLimit(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEventQueryService(txManager, logger)

	expectListByUser(t, txManager, 50, nil)

	events, err := svc.StoredEvents(context.Background(), uuid.New(), 0)

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventQueryService_StoredEvents_ClampsLimit(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEventQueryService(txManager, logger)

	expectListByUser(t, txManager, 200, nil)

	_, err := svc.StoredEvents(context.Background(), uuid.New(), 500)

	require.NoError(t, err)
}

func TestEventQueryService_StoredEvents_KeepsExplicitLimit(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEventQueryService(txManager, logger)

	title := "Standup"
	stored := []*entity.CalendarEvent{{ID: uuid.New(), Title: &title}}
	expectListByUser(t, txManager, 10, stored)

	events, err := svc.StoredEvents(context.Background(), uuid.New(), 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", *events[0].Title)
}

func TestEventQueryService_Meetings_UsesDefaultLimit(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEventQueryService(txManager, logger)

	expectListByUser(t, txManager, 50, nil)

	_, err := svc.Meetings(context.Background(), uuid.New())

	require.NoError(t, err)
}

func TestEventQueryService_StoredEvents_RepositoryFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEventQueryService(txManager, logger)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)
			mockEventRepo.EXPECT().
				ListByUser(ctx, mock.AnythingOfType("uuid.UUID"), 50).
				Return(nil, assert.AnError)

			return fn(mockFactory)
		})

	events, err := svc.StoredEvents(context.Background(), uuid.New(), 0)

	require.Error(t, err)
	assert.Nil(t, events)
}
