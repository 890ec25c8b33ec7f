package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GuestGroup categorizes how a guest relates to the host
type GuestGroup string

const (
	GroupFamily  GuestGroup = "family"
	GroupFriends GuestGroup = "friends"
	GroupWork    GuestGroup = "work"
	GroupOther   GuestGroup = "other"
)

// RSVPStatus represents the attendance confirmation status
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPMaybe     RSVPStatus = "maybe"
)

// Guest represents an invited guest party. AttendingCount is the unified party
// size; MaleCount/FemaleCount are used only when an event seats genders separately.
type Guest struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	EventID        uuid.UUID  `db:"event_id" json:"event_id"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Group          GuestGroup `db:"guest_group" json:"group"`
	CustomGroup    *string    `db:"custom_group" json:"custom_group,omitempty"`
	RSVPStatus     RSVPStatus `db:"rsvp_status" json:"rsvp_status"`
	AttendingCount int        `db:"attending_count" json:"attending_count"`
	MaleCount      int        `db:"male_count" json:"male_count"`
	FemaleCount    int        `db:"female_count" json:"female_count"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// FullName returns the guest display name
func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// GroupKey returns the canonical grouping key; a custom group takes precedence
// over the built-in category.
func (g *Guest) GroupKey() string {
	if g.CustomGroup != nil && *g.CustomGroup != "" {
		return "custom:" + *g.CustomGroup
	}
	return string(g.Group)
}

// GroupLabel returns the human-readable group name used for table naming
func (g *Guest) GroupLabel() string {
	if g.CustomGroup != nil && *g.CustomGroup != "" {
		return *g.CustomGroup
	}
	switch g.Group {
	case GroupFamily:
		return "Family"
	case GroupFriends:
		return "Friends"
	case GroupWork:
		return "Work"
	default:
		return "Other"
	}
}

// IsConfirmed reports whether the guest participates in seating
func (g *Guest) IsConfirmed() bool {
	return g.RSVPStatus == RSVPConfirmed
}
