package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"agenda/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newEventTestDB opens an isolated in-memory database with the
// calendar_events schema, including the composite upsert key.
func newEventTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE calendar_events (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		google_event_id TEXT NOT NULL,
		title TEXT,
		description TEXT,
		start_time DATETIME,
		end_time DATETIME,
		attendees TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX idx_user_google_event ON calendar_events (user_id, google_event_id)`,
	).Error)

	return db
}

func strPtr(s string) *string {
	return &s
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}

func TestEventRepository_Upsert_ConvergesOnCompositeKey(t *testing.T) {
	t.Parallel()

	db := newEventTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	firstID := uuid.New()

	firstStart := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &entity.CalendarEvent{
		ID:            firstID,
		UserID:        userID,
		GoogleEventID: "evt-1",
		Title:         strPtr("Standup"),
		Description:   strPtr("Daily"),
		StartTime:     timePtr(firstStart),
		Attendees:     []entity.Attendee{{Email: "alice@example.com"}},
	}))

	// Same (user, google event id), fresh values. Later write wins wholesale,
	// including fields the provider no longer sends.
	movedStart := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &entity.CalendarEvent{
		ID:            uuid.New(),
		UserID:        userID,
		GoogleEventID: "evt-1",
		Title:         strPtr("Standup (moved)"),
		StartTime:     timePtr(movedStart),
		Attendees: []entity.Attendee{
			{Email: "alice@example.com"},
			{Email: "bob@example.com", Organizer: true},
		},
	}))

	events, err := repo.ListByUser(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, firstID, got.ID)
	assert.Equal(t, "evt-1", got.GoogleEventID)
	require.NotNil(t, got.Title)
	assert.Equal(t, "Standup (moved)", *got.Title)
	assert.Nil(t, got.Description)
	require.NotNil(t, got.StartTime)
	assert.WithinDuration(t, movedStart, *got.StartTime, time.Second)
	require.Len(t, got.Attendees, 2)
	assert.Equal(t, "bob@example.com", got.Attendees[1].Email)
	assert.True(t, got.Attendees[1].Organizer)
}

func TestEventRepository_Upsert_IsIdempotent(t *testing.T) {
	t.Parallel()

	db := newEventTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	event := &entity.CalendarEvent{
		ID:            uuid.New(),
		UserID:        userID,
		GoogleEventID: "evt-replay",
		Title:         strPtr("Planning"),
		StartTime:     timePtr(time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)),
	}

	require.NoError(t, repo.Upsert(ctx, event))
	require.NoError(t, repo.Upsert(ctx, event))

	events, err := repo.ListByUser(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Title)
	assert.Equal(t, "Planning", *events[0].Title)
}

func TestEventRepository_ListByUser_OrdersByStartDescending(t *testing.T) {
	t.Parallel()

	db := newEventTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	// Insertion order deliberately scrambled; only start_time decides order.
	starts := map[string]time.Time{
		"evt-past-old":    now.Add(-48 * time.Hour),
		"evt-future-far":  now.Add(72 * time.Hour),
		"evt-past-recent": now.Add(-time.Hour),
		"evt-future-near": now.Add(time.Hour),
		"evt-future-mid":  now.Add(24 * time.Hour),
	}
	for googleEventID, start := range starts {
		require.NoError(t, repo.Upsert(ctx, &entity.CalendarEvent{
			ID:            uuid.New(),
			UserID:        userID,
			GoogleEventID: googleEventID,
			StartTime:     timePtr(start),
		}))
	}

	// Another user's event must stay invisible.
	require.NoError(t, repo.Upsert(ctx, &entity.CalendarEvent{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		GoogleEventID: "evt-other-user",
		StartTime:     timePtr(now),
	}))

	events, err := repo.ListByUser(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, events, 5)

	order := make([]string, 0, len(events))
	for _, event := range events {
		order = append(order, event.GoogleEventID)
	}
	assert.Equal(t, []string{
		"evt-future-far",
		"evt-future-mid",
		"evt-future-near",
		"evt-past-recent",
		"evt-past-old",
	}, order)
}

func TestEventRepository_ListByUser_AppliesLimitAndSortsNilStartLast(t *testing.T) {
	t.Parallel()

	db := newEventTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, &entity.CalendarEvent{
		ID:            uuid.New(),
		UserID:        userID,
		GoogleEventID: "evt-unscheduled",
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.CalendarEvent{
		ID:            uuid.New(),
		UserID:        userID,
		GoogleEventID: "evt-early",
		StartTime:     timePtr(now.Add(-time.Hour)),
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.CalendarEvent{
		ID:            uuid.New(),
		UserID:        userID,
		GoogleEventID: "evt-late",
		StartTime:     timePtr(now.Add(time.Hour)),
	}))

	events, err := repo.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "evt-late", events[0].GoogleEventID)
	assert.Equal(t, "evt-early", events[1].GoogleEventID)

	events, err = repo.ListByUser(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "evt-unscheduled", events[2].GoogleEventID)
}
