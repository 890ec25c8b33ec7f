package service

import (
	"context"

	"planit-api/core/errors"
	"planit-api/modules/guest/dto"
	"planit-api/modules/guest/entity"
	"planit-api/modules/guest/repository"

	"github.com/google/uuid"
)

// GuestService handles guest roster business logic
type GuestService struct {
	repo repository.GuestRepositoryInterface
}

// GuestServiceInterface defines the service contract
type GuestServiceInterface interface {
	CreateGuest(ctx context.Context, eventID uuid.UUID, req *dto.CreateGuestRequest) (*dto.GuestResponse, *errors.AppError)
	GetGuestByID(ctx context.Context, id uuid.UUID) (*dto.GuestResponse, *errors.AppError)
	ListGuests(ctx context.Context, eventID uuid.UUID) ([]dto.GuestResponse, *errors.AppError)
	ListGuestEntities(ctx context.Context, eventID uuid.UUID) ([]entity.Guest, *errors.AppError)
	UpdateGuest(ctx context.Context, id uuid.UUID, req *dto.UpdateGuestRequest) (*dto.GuestResponse, *errors.AppError)
	UpdateRSVP(ctx context.Context, id uuid.UUID, req *dto.UpdateRSVPRequest) (*dto.GuestResponse, *errors.AppError)
	DeleteGuest(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewGuestService creates a new guest service
func NewGuestService(repo repository.GuestRepositoryInterface) GuestServiceInterface {
	return &GuestService{repo: repo}
}

func parseGroup(raw string) entity.GuestGroup {
	switch entity.GuestGroup(raw) {
	case entity.GroupFamily, entity.GroupFriends, entity.GroupWork:
		return entity.GuestGroup(raw)
	default:
		return entity.GroupOther
	}
}

func parseRSVPStatus(raw string) (entity.RSVPStatus, bool) {
	switch entity.RSVPStatus(raw) {
	case entity.RSVPPending, entity.RSVPConfirmed, entity.RSVPDeclined, entity.RSVPMaybe:
		return entity.RSVPStatus(raw), true
	default:
		return "", false
	}
}

// CreateGuest adds a guest to the event roster
func (s *GuestService) CreateGuest(ctx context.Context, eventID uuid.UUID, req *dto.CreateGuestRequest) (*dto.GuestResponse, *errors.AppError) {
	if req.FirstName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Guest first name is required", nil)
	}

	status := entity.RSVPPending
	if req.RSVPStatus != "" {
		parsed, ok := parseRSVPStatus(req.RSVPStatus)
		if !ok {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid RSVP status", nil)
		}
		status = parsed
	}

	attending := req.AttendingCount
	if attending < 1 {
		attending = 1
	}
	if req.MaleCount < 0 || req.FemaleCount < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Gender counts cannot be negative", nil)
	}

	guest := &entity.Guest{
		EventID:        eventID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Group:          parseGroup(req.Group),
		RSVPStatus:     status,
		AttendingCount: attending,
		MaleCount:      req.MaleCount,
		FemaleCount:    req.FemaleCount,
	}
	if req.CustomGroup != "" {
		guest.CustomGroup = &req.CustomGroup
	}

	created, err := s.repo.CreateGuest(ctx, guest)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create guest", err)
	}

	return dto.ToGuestResponse(created), nil
}

// GetGuestByID retrieves a guest by ID
func (s *GuestService) GetGuestByID(ctx context.Context, id uuid.UUID) (*dto.GuestResponse, *errors.AppError) {
	guest, err := s.repo.GetGuestByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get guest", err)
	}
	if guest == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Guest not found", nil)
	}
	return dto.ToGuestResponse(guest), nil
}

// ListGuests returns the event roster as DTOs
func (s *GuestService) ListGuests(ctx context.Context, eventID uuid.UUID) ([]dto.GuestResponse, *errors.AppError) {
	guests, appErr := s.ListGuestEntities(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	result := make([]dto.GuestResponse, 0, len(guests))
	for _, g := range guests {
		result = append(result, *dto.ToGuestResponse(&g))
	}
	return result, nil
}

// ListGuestEntities returns the raw roster entities, used by the seating core
func (s *GuestService) ListGuestEntities(ctx context.Context, eventID uuid.UUID) ([]entity.Guest, *errors.AppError) {
	guests, err := s.repo.GetGuestsByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list guests", err)
	}
	return guests, nil
}

// UpdateGuest edits guest details
func (s *GuestService) UpdateGuest(ctx context.Context, id uuid.UUID, req *dto.UpdateGuestRequest) (*dto.GuestResponse, *errors.AppError) {
	guest, err := s.repo.GetGuestByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get guest", err)
	}
	if guest == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Guest not found", nil)
	}

	if req.FirstName != nil {
		guest.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		guest.LastName = *req.LastName
	}
	if req.Group != nil {
		guest.Group = parseGroup(*req.Group)
	}
	if req.CustomGroup != nil {
		if *req.CustomGroup == "" {
			guest.CustomGroup = nil
		} else {
			guest.CustomGroup = req.CustomGroup
		}
	}
	if req.AttendingCount != nil {
		if *req.AttendingCount < 1 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Attending count must be at least 1", nil)
		}
		guest.AttendingCount = *req.AttendingCount
	}
	if req.MaleCount != nil {
		if *req.MaleCount < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Male count cannot be negative", nil)
		}
		guest.MaleCount = *req.MaleCount
	}
	if req.FemaleCount != nil {
		if *req.FemaleCount < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Female count cannot be negative", nil)
		}
		guest.FemaleCount = *req.FemaleCount
	}

	if err := s.repo.UpdateGuest(ctx, guest); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update guest", err)
	}

	return dto.ToGuestResponse(guest), nil
}

// UpdateRSVP changes a guest's attendance answer and party size
func (s *GuestService) UpdateRSVP(ctx context.Context, id uuid.UUID, req *dto.UpdateRSVPRequest) (*dto.GuestResponse, *errors.AppError) {
	status, ok := parseRSVPStatus(req.RSVPStatus)
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid RSVP status", nil)
	}

	guest, err := s.repo.GetGuestByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get guest", err)
	}
	if guest == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Guest not found", nil)
	}

	guest.RSVPStatus = status
	if req.AttendingCount > 0 {
		guest.AttendingCount = req.AttendingCount
	}
	if req.MaleCount >= 0 && req.FemaleCount >= 0 && req.MaleCount+req.FemaleCount > 0 {
		guest.MaleCount = req.MaleCount
		guest.FemaleCount = req.FemaleCount
	}

	if err := s.repo.UpdateGuest(ctx, guest); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update RSVP", err)
	}

	return dto.ToGuestResponse(guest), nil
}

// DeleteGuest removes a guest from the roster
func (s *GuestService) DeleteGuest(ctx context.Context, id uuid.UUID) *errors.AppError {
	guest, err := s.repo.GetGuestByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get guest", err)
	}
	if guest == nil {
		return errors.NewAppError(errors.ErrNotFound, "Guest not found", nil)
	}

	if err := s.repo.DeleteGuest(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete guest", err)
	}
	return nil
}
