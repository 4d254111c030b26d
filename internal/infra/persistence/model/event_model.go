package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CalendarEventModel mirrors the 'calendar_events' table. The composite
// unique index on (user_id, google_event_id) is the upsert conflict target,
// making repeated syncs idempotent.
type CalendarEventModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_google_event"`
	GoogleEventID string         `gorm:"type:varchar(1024);not null;uniqueIndex:idx_user_google_event"`
	Title         *string        `gorm:"type:text"`
	Description   *string        `gorm:"type:text"`
	StartTime     *time.Time     `gorm:"index:idx_events_user_start,sort:desc"`
	EndTime       *time.Time
	Attendees     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
