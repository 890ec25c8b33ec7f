package entity

import "encoding/json"

// Preferences holds seating-wide options
type Preferences struct {
	GenderSeparated bool `json:"gender_separated"`
}

// Layout is the persisted seating document for one event: the table registry,
// the arrangement (table id -> seated entity keys, insertion ordered), the set
// of manually named tables and opaque presentation settings.
type Layout struct {
	Tables         []Table                `json:"tables"`
	Arrangement    map[string][]EntityKey `json:"arrangement"`
	ManualNames    map[string]bool        `json:"manual_names,omitempty"`
	Preferences    Preferences            `json:"preferences"`
	LayoutSettings json.RawMessage        `json:"layout_settings,omitempty"`
}

// NewLayout returns an empty layout, the valid initial state before anything
// has been saved.
func NewLayout() *Layout {
	return &Layout{
		Tables:      []Table{},
		Arrangement: map[string][]EntityKey{},
		ManualNames: map[string]bool{},
	}
}
