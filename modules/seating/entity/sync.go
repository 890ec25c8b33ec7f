package entity

import (
	"github.com/google/uuid"

	guestentity "planit-api/modules/guest/entity"
)

// GuestFingerprint is the minimal projection of one confirmed guest used to
// detect roster changes between sync cycles.
type GuestFingerprint struct {
	GuestID        uuid.UUID              `json:"guest_id"`
	Status         guestentity.RSVPStatus `json:"status"`
	AttendingCount int                    `json:"attending_count"`
	MaleCount      int                    `json:"male_count"`
	FemaleCount    int                    `json:"female_count"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	Group          string                 `json:"group"`
}

// ChangeKind tags a detected roster change
type ChangeKind string

const (
	ChangeNewConfirmed         ChangeKind = "new_confirmed"
	ChangeBecameConfirmed      ChangeKind = "became_confirmed"
	ChangeNoLongerConfirmed    ChangeKind = "no_longer_confirmed"
	ChangeGuestRemoved         ChangeKind = "guest_removed"
	ChangeAttendingCountChange ChangeKind = "attending_count_changed"
)

// Change is one detected difference between two roster fingerprints
type Change struct {
	Kind      ChangeKind `json:"kind"`
	GuestID   uuid.UUID  `json:"guest_id"`
	GuestName string     `json:"guest_name"`
	OldCount  int        `json:"old_count,omitempty"`
	NewCount  int        `json:"new_count,omitempty"`
}

// ActionKind tags one reconciliation action in the user-facing summary
type ActionKind string

const (
	ActionGuestSeated          ActionKind = "guest_seated"
	ActionGuestRemoved         ActionKind = "guest_removed"
	ActionGuestUpdated         ActionKind = "guest_updated"
	ActionGuestMoved           ActionKind = "guest_moved"
	ActionTableCreated         ActionKind = "table_created"
	ActionArrangementOptimized ActionKind = "arrangement_optimized"
)

// SyncAction records one thing the reconciliation engine did
type SyncAction struct {
	Kind      ActionKind `json:"kind"`
	GuestName string     `json:"guest_name,omitempty"`
	TableName string     `json:"table_name,omitempty"`
	FromTable string     `json:"from_table,omitempty"`
	ToTable   string     `json:"to_table,omitempty"`
	OldCount  int        `json:"old_count,omitempty"`
	NewCount  int        `json:"new_count,omitempty"`
	Detail    string     `json:"detail,omitempty"`
}

// SyncStrategy labels a candidate reconciliation when the engine escalates
type SyncStrategy string

const (
	StrategyConservative SyncStrategy = "conservative"
	StrategyOptimal      SyncStrategy = "optimal"
)

// SyncOption is one candidate reconciliation offered to the planner. Result is
// the full layout that applying the option would produce; it is applied
// atomically as a single replacement.
type SyncOption struct {
	ID          string       `json:"id"`
	Strategy    SyncStrategy `json:"strategy"`
	Description string       `json:"description"`
	Actions     []SyncAction `json:"actions"`
	Result      *Layout      `json:"result"`
}

// SyncStatus reports whether the roster has drifted from the arrangement
type SyncStatus struct {
	SyncRequired    bool `json:"sync_required"`
	PendingTriggers int  `json:"pending_triggers"`
}

// SyncOutcome is the result of running the reconciliation engine: either an
// auto-applied layout with its action summary, or a set of options awaiting a
// planner decision.
type SyncOutcome struct {
	HasChanges           bool         `json:"has_changes"`
	RequiresUserDecision bool         `json:"requires_user_decision"`
	Layout               *Layout      `json:"seating,omitempty"`
	Actions              []SyncAction `json:"actions,omitempty"`
	Options              []SyncOption `json:"options,omitempty"`
	AffectedGuests       []string     `json:"affected_guests,omitempty"`
	PendingTriggers      int          `json:"pending_triggers,omitempty"`
	Message              string       `json:"message"`
}
