package dto

import (
	"encoding/json"

	"planit-api/modules/seating/entity"

	guestentity "planit-api/modules/guest/entity"
)

// ===================== Request DTOs =====================

// SaveLayoutRequest replaces the stored layout wholesale (client-driven save)
type SaveLayoutRequest struct {
	Tables         []entity.Table                `json:"tables"`
	Arrangement    map[string][]entity.EntityKey `json:"arrangement"`
	ManualNames    map[string]bool               `json:"manual_names"`
	Preferences    entity.Preferences            `json:"preferences"`
	LayoutSettings json.RawMessage               `json:"layout_settings"`
}

// AddTableRequest for creating a table
type AddTableRequest struct {
	Shape    string  `json:"shape"`
	Capacity int     `json:"capacity" validate:"required,min=4,max=30"`
	PosX     float64 `json:"pos_x"`
	PosY     float64 `json:"pos_y"`
}

// UpdateTableRequest for editing a table; nil fields stay unchanged
type UpdateTableRequest struct {
	Name     *string  `json:"name"`
	Shape    *string  `json:"shape"`
	Capacity *int     `json:"capacity"`
	PosX     *float64 `json:"pos_x"`
	PosY     *float64 `json:"pos_y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Affinity *string  `json:"affinity"`
}

// SeatRequest places a seating entity at a table
type SeatRequest struct {
	GuestID   string `json:"guest_id" validate:"required"`
	Partition string `json:"partition"`
	TableID   string `json:"table_id" validate:"required"`
}

// UnseatRequest removes a seating entity from its table
type UnseatRequest struct {
	GuestID   string `json:"guest_id" validate:"required"`
	Partition string `json:"partition"`
}

// ApplyOptionRequest optionally overrides the chosen option's arrangement
type ApplyOptionRequest struct {
	CustomLayout *entity.Layout `json:"custom_arrangement,omitempty"`
}

// MoveToUnassignedRequest is the built-in fallback for pending sync decisions
type MoveToUnassignedRequest struct {
	GuestIDs []string `json:"guest_ids" validate:"required"`
}

// ===================== Response DTOs =====================

// SeatedEntityDTO describes one entity seated at a table
type SeatedEntityDTO struct {
	GuestID   string `json:"guest_id"`
	Partition string `json:"partition"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Size      int    `json:"size"`
}

// TableResponse is a table with its computed occupancy
type TableResponse struct {
	ID           string            `json:"id"`
	Number       int               `json:"number"`
	Name         string            `json:"name"`
	Shape        string            `json:"shape"`
	Capacity     int               `json:"capacity"`
	PosX         float64           `json:"pos_x"`
	PosY         float64           `json:"pos_y"`
	Width        float64           `json:"width"`
	Height       float64           `json:"height"`
	Affinity     string            `json:"affinity,omitempty"`
	Occupancy    int               `json:"occupancy"`
	OverCapacity bool              `json:"over_capacity"`
	Seated       []SeatedEntityDTO `json:"seated"`
}

// LayoutResponse is the full seating document plus derived occupancy data
type LayoutResponse struct {
	Tables         []TableResponse               `json:"tables"`
	Arrangement    map[string][]entity.EntityKey `json:"arrangement"`
	ManualNames    map[string]bool               `json:"manual_names"`
	Preferences    entity.Preferences            `json:"preferences"`
	LayoutSettings json.RawMessage               `json:"layout_settings,omitempty"`
	Unassigned     []SeatedEntityDTO             `json:"unassigned"`
}

// ToLayoutResponse maps a layout plus the current roster to its response DTO.
// Over-capacity is a flagged condition, never silently corrected: a stored
// layout whose guests outgrew a table surfaces here for the client to act on.
func ToLayoutResponse(layout *entity.Layout, guests []guestentity.Guest) *LayoutResponse {
	index := map[entity.EntityKey]entity.SeatingEntity{}
	var order []entity.EntityKey
	for i := range guests {
		for _, e := range entity.EntitiesForGuest(&guests[i], layout.Preferences.GenderSeparated) {
			index[e.Key] = e
			order = append(order, e.Key)
		}
	}

	resp := &LayoutResponse{
		Tables:         make([]TableResponse, 0, len(layout.Tables)),
		Arrangement:    layout.Arrangement,
		ManualNames:    layout.ManualNames,
		Preferences:    layout.Preferences,
		LayoutSettings: layout.LayoutSettings,
		Unassigned:     []SeatedEntityDTO{},
	}

	seated := map[entity.EntityKey]bool{}
	for _, t := range layout.Tables {
		occ := 0
		tr := TableResponse{
			ID:       t.ID,
			Number:   t.Number,
			Name:     t.Name,
			Shape:    string(t.Shape),
			Capacity: t.Capacity,
			PosX:     t.PosX,
			PosY:     t.PosY,
			Width:    t.Width,
			Height:   t.Height,
			Affinity: string(t.Affinity),
			Seated:   []SeatedEntityDTO{},
		}
		for _, key := range layout.Arrangement[t.ID] {
			seated[key] = true
			if e, ok := index[key]; ok {
				occ += e.Size
				tr.Seated = append(tr.Seated, toSeatedEntityDTO(e))
			}
		}
		tr.Occupancy = occ
		tr.OverCapacity = occ > t.Capacity
		resp.Tables = append(resp.Tables, tr)
	}

	for _, key := range order {
		if !seated[key] {
			resp.Unassigned = append(resp.Unassigned, toSeatedEntityDTO(index[key]))
		}
	}

	return resp
}

func toSeatedEntityDTO(e entity.SeatingEntity) SeatedEntityDTO {
	return SeatedEntityDTO{
		GuestID:   e.Key.GuestID.String(),
		Partition: string(e.Key.Partition),
		Name:      e.DisplayName,
		Group:     e.GroupLabel,
		Size:      e.Size,
	}
}
