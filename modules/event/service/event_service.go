package service

import (
	"context"
	"time"

	"planit-api/core/errors"
	"planit-api/modules/event/dto"
	"planit-api/modules/event/entity"
	"planit-api/modules/event/repository"

	"github.com/google/uuid"
)

// EventService handles event business logic
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, ownerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetMyEvents(ctx context.Context, ownerID uuid.UUID) ([]dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, ownerID uuid.UUID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, ownerID uuid.UUID, eventID uuid.UUID) *errors.AppError
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

func parseEventType(raw string) entity.EventType {
	switch entity.EventType(raw) {
	case entity.EventTypeWedding, entity.EventTypeBirthday, entity.EventTypeCorporate:
		return entity.EventType(raw)
	default:
		return entity.EventTypeOther
	}
}

// CreateEvent creates a new event
func (s *EventService) CreateEvent(ctx context.Context, ownerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event name is required", nil)
	}

	event := &entity.Event{
		OwnerID:   ownerID,
		Name:      req.Name,
		EventType: parseEventType(req.EventType),
	}

	if req.Date != "" {
		date, parseErr := time.Parse("2006-01-02", req.Date)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date format, expected YYYY-MM-DD", parseErr)
		}
		event.Date = &date
	}
	if req.Location != "" {
		event.Location = &req.Location
	}
	if req.ExpectedGuests > 0 {
		event.ExpectedGuests = &req.ExpectedGuests
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return dto.ToEventResponse(created), nil
}

// getOwnedEvent loads an event and verifies ownership
func (s *EventService) getOwnedEvent(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.OwnerID != ownerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Event belongs to another user", nil)
	}
	return event, nil
}

// GetEventByID retrieves an event by ID
func (s *EventService) GetEventByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.getOwnedEvent(ctx, ownerID, id)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToEventResponse(event), nil
}

// GetMyEvents retrieves all events for an owner
func (s *EventService) GetMyEvents(ctx context.Context, ownerID uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	events, err := s.repo.GetEventsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	result := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *dto.ToEventResponse(&e))
	}
	return result, nil
}

// UpdateEvent updates event details
func (s *EventService) UpdateEvent(ctx context.Context, ownerID uuid.UUID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.getOwnedEvent(ctx, ownerID, eventID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != "" {
		event.Name = req.Name
	}
	if req.EventType != "" {
		event.EventType = parseEventType(req.EventType)
	}
	if req.Date != "" {
		date, parseErr := time.Parse("2006-01-02", req.Date)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date format, expected YYYY-MM-DD", parseErr)
		}
		event.Date = &date
	}
	if req.Location != "" {
		event.Location = &req.Location
	}
	if req.ExpectedGuests > 0 {
		event.ExpectedGuests = &req.ExpectedGuests
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return dto.ToEventResponse(event), nil
}

// DeleteEvent removes an event and its dependent data
func (s *EventService) DeleteEvent(ctx context.Context, ownerID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	_, appErr := s.getOwnedEvent(ctx, ownerID, eventID)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteEvent(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	return nil
}
