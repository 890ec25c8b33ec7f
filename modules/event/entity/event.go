package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType categorizes a planned event
type EventType string

const (
	EventTypeWedding   EventType = "wedding"
	EventTypeBirthday  EventType = "birthday"
	EventTypeCorporate EventType = "corporate"
	EventTypeOther     EventType = "other"
)

// Event represents a planned event owned by a user
type Event struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OwnerID        uuid.UUID  `db:"owner_id" json:"owner_id"`
	Name           string     `db:"name" json:"name"`
	EventType      EventType  `db:"event_type" json:"event_type"`
	Date           *time.Time `db:"date" json:"date,omitempty"`
	Location       *string    `db:"location" json:"location,omitempty"`
	ExpectedGuests *int       `db:"expected_guests" json:"expected_guests,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
