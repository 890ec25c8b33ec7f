package repository

import (
	"context"
	"database/sql"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event database operations
type EventRepository struct {
	DB database.Database
}

// NewEventRepository creates a new repository instance
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventsByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]entity.Event, error)
	GetEventIDsWithSeating(ctx context.Context) ([]uuid.UUID, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (owner_id, name, event_type, date, location, expected_guests)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, event_type, date, location, expected_guests, created_at, updated_at
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.OwnerID, event.Name, event.EventType, event.Date, event.Location, event.ExpectedGuests)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, owner_id, name, event_type, date, location, expected_guests, created_at, updated_at
		FROM events WHERE id = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", "error", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) GetEventsByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, owner_id, name, event_type, date, location, expected_guests, created_at, updated_at
		FROM events WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, ownerID)
	if err != nil {
		logger.Error("EventRepository:GetEventsByOwnerID", "error", err)
		return nil, err
	}

	return events, nil
}

// GetEventIDsWithSeating lists events that have a saved seating layout, used by the sync poll
func (r *EventRepository) GetEventIDsWithSeating(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT event_id FROM seating_layouts`

	var ids []uuid.UUID
	err := r.DB.SelectContext(ctx, &ids, query)
	if err != nil {
		logger.Error("EventRepository:GetEventIDsWithSeating", "error", err)
		return nil, err
	}

	return ids, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $2, event_type = $3, date = $4, location = $5, expected_guests = $6, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Name, event.EventType, event.Date, event.Location, event.ExpectedGuests)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", "error", err)
	}
	return err
}

// DeleteEvent removes the event; guests and seating layout rows cascade via FK
func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		logger.Error("EventRepository:DeleteEvent", "error", err)
	}
	return err
}
