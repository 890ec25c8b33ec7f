package dto

import (
	"time"

	"planit-api/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest for creating a new event
type CreateEventRequest struct {
	Name           string `json:"name" validate:"required"`
	EventType      string `json:"event_type"`
	Date           string `json:"date"` // YYYY-MM-DD
	Location       string `json:"location"`
	ExpectedGuests int    `json:"expected_guests"`
}

// UpdateEventRequest for updating event details
type UpdateEventRequest struct {
	Name           string `json:"name"`
	EventType      string `json:"event_type"`
	Date           string `json:"date"`
	Location       string `json:"location"`
	ExpectedGuests int    `json:"expected_guests"`
}

// ===================== Response DTOs =====================

// EventResponse for event details
type EventResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	EventType      string     `json:"event_type"`
	Date           *time.Time `json:"date,omitempty"`
	Location       string     `json:"location,omitempty"`
	ExpectedGuests int        `json:"expected_guests,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToEventResponse maps an event entity to its response DTO
func ToEventResponse(e *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		EventType: string(e.EventType),
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Location != nil {
		resp.Location = *e.Location
	}
	if e.ExpectedGuests != nil {
		resp.ExpectedGuests = *e.ExpectedGuests
	}
	return resp
}
