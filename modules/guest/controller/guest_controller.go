package controller

import (
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/modules/guest/dto"
	"planit-api/modules/guest/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GuestController handles guest roster HTTP requests
type GuestController struct {
	controller.BaseController
	GuestService service.GuestServiceInterface
}

// NewGuestController creates a new controller
func NewGuestController(svc service.GuestServiceInterface) *GuestController {
	return &GuestController{
		BaseController: controller.NewBaseController(),
		GuestService:   svc,
	}
}

// CreateGuest handles POST /events/:eventId/guests
// @Summary Add guest
// @Tags Guest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body dto.CreateGuestRequest true "Guest details"
// @Success 200 {object} dto.GuestResponse
// @Router /private/events/{eventId}/guests [post]
func (c *GuestController) CreateGuest(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.CreateGuestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GuestService.CreateGuest(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Guest created successfully")
}

// ListGuests handles GET /events/:eventId/guests
// @Summary List guests
// @Tags Guest
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} dto.GuestResponse
// @Router /private/events/{eventId}/guests [get]
func (c *GuestController) ListGuests(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.GuestService.ListGuests(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Guests retrieved successfully")
}

// GetGuest handles GET /guests/:id
// @Summary Get guest
// @Tags Guest
// @Security BearerAuth
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} dto.GuestResponse
// @Router /private/guests/{id} [get]
func (c *GuestController) GetGuest(ctx echo.Context) error {
	guestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid guest ID")
	}

	result, appErr := c.GuestService.GetGuestByID(ctx.Request().Context(), guestID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Guest retrieved successfully")
}

// UpdateGuest handles PUT /guests/:id
// @Summary Update guest
// @Tags Guest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Guest details"
// @Success 200 {object} dto.GuestResponse
// @Router /private/guests/{id} [put]
func (c *GuestController) UpdateGuest(ctx echo.Context) error {
	guestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid guest ID")
	}

	var req dto.UpdateGuestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GuestService.UpdateGuest(ctx.Request().Context(), guestID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Guest updated successfully")
}

// UpdateRSVP handles PATCH /guests/:id/rsvp
// @Summary Update guest RSVP
// @Tags Guest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateRSVPRequest true "RSVP details"
// @Success 200 {object} dto.GuestResponse
// @Router /private/guests/{id}/rsvp [patch]
func (c *GuestController) UpdateRSVP(ctx echo.Context) error {
	guestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid guest ID")
	}

	var req dto.UpdateRSVPRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GuestService.UpdateRSVP(ctx.Request().Context(), guestID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "RSVP updated successfully")
}

// DeleteGuest handles DELETE /guests/:id
// @Summary Delete guest
// @Tags Guest
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200
// @Router /private/guests/{id} [delete]
func (c *GuestController) DeleteGuest(ctx echo.Context) error {
	guestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid guest ID")
	}

	if appErr := c.GuestService.DeleteGuest(ctx.Request().Context(), guestID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Guest deleted successfully")
}
