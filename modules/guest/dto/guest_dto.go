package dto

import (
	"planit-api/modules/guest/entity"
)

// ===================== Request DTOs =====================

// CreateGuestRequest for adding a guest to an event
type CreateGuestRequest struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name"`
	Group          string `json:"group"`
	CustomGroup    string `json:"custom_group"`
	RSVPStatus     string `json:"rsvp_status"`
	AttendingCount int    `json:"attending_count"`
	MaleCount      int    `json:"male_count"`
	FemaleCount    int    `json:"female_count"`
}

// UpdateGuestRequest for editing guest details
type UpdateGuestRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Group          *string `json:"group"`
	CustomGroup    *string `json:"custom_group"`
	AttendingCount *int    `json:"attending_count"`
	MaleCount      *int    `json:"male_count"`
	FemaleCount    *int    `json:"female_count"`
}

// UpdateRSVPRequest for changing a guest's attendance answer
type UpdateRSVPRequest struct {
	RSVPStatus     string `json:"rsvp_status" validate:"required"`
	AttendingCount int    `json:"attending_count"`
	MaleCount      int    `json:"male_count"`
	FemaleCount    int    `json:"female_count"`
}

// ===================== Response DTOs =====================

// GuestResponse for guest details
type GuestResponse struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	Group          string `json:"group"`
	CustomGroup    string `json:"custom_group,omitempty"`
	GroupLabel     string `json:"group_label"`
	RSVPStatus     string `json:"rsvp_status"`
	AttendingCount int    `json:"attending_count"`
	MaleCount      int    `json:"male_count"`
	FemaleCount    int    `json:"female_count"`
}

// ToGuestResponse maps a guest entity to its response DTO
func ToGuestResponse(g *entity.Guest) *GuestResponse {
	resp := &GuestResponse{
		ID:             g.ID.String(),
		EventID:        g.EventID.String(),
		FirstName:      g.FirstName,
		LastName:       g.LastName,
		FullName:       g.FullName(),
		Group:          string(g.Group),
		GroupLabel:     g.GroupLabel(),
		RSVPStatus:     string(g.RSVPStatus),
		AttendingCount: g.AttendingCount,
		MaleCount:      g.MaleCount,
		FemaleCount:    g.FemaleCount,
	}
	if g.CustomGroup != nil {
		resp.CustomGroup = *g.CustomGroup
	}
	return resp
}
