package postgres

import (
	"context"
	"encoding/json"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Upsert inserts the event or overwrites the existing row with the same
// (user_id, google_event_id) pair. Last write wins; repeated syncs of the
// same payload are idempotent.
func (repo *eventRepository) Upsert(ctx context.Context, event *entity.CalendarEvent) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "google_event_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "start_time", "end_time", "attendees", "updated_at",
			}),
		}).
		Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert calendar event")
	}

	return nil
}

// ListByUser retrieves up to limit events of the user, most recent start
// first. Events without a start time sort last.
func (repo *eventRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CalendarEvent, error) {
	var eventModels []*model.CalendarEventModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC NULLS LAST").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list calendar events by user")
	}

	events := make([]*entity.CalendarEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		event, err := toEventDomain(eventM)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// toEventDomain converts the persistence model to the domain entity.
func toEventDomain(eventM *model.CalendarEventModel) (*entity.CalendarEvent, error) {
	var attendees []entity.Attendee
	if len(eventM.Attendees) > 0 {
		if err := json.Unmarshal(eventM.Attendees, &attendees); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal attendees")
		}
	}

	return &entity.CalendarEvent{
		ID:            eventM.ID,
		UserID:        eventM.UserID,
		GoogleEventID: eventM.GoogleEventID,
		Title:         eventM.Title,
		Description:   eventM.Description,
		StartTime:     eventM.StartTime,
		EndTime:       eventM.EndTime,
		Attendees:     attendees,
		CreatedAt:     eventM.CreatedAt,
		UpdatedAt:     eventM.UpdatedAt,
	}, nil
}

// fromEventDomain converts the domain entity to the persistence model.
func fromEventDomain(event *entity.CalendarEvent) (*model.CalendarEventModel, error) {
	var attendees datatypes.JSON
	if len(event.Attendees) > 0 {
		data, err := json.Marshal(event.Attendees)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal attendees")
		}
		attendees = datatypes.JSON(data)
	}

	return &model.CalendarEventModel{
		ID:            event.ID,
		UserID:        event.UserID,
		GoogleEventID: event.GoogleEventID,
		Title:         event.Title,
		Description:   event.Description,
		StartTime:     event.StartTime,
		EndTime:       event.EndTime,
		Attendees:     attendees,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
	}, nil
}
