package controller

import (
	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"
	"planit-api/modules/event/dto"
	"planit-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

// NewEventController creates a new controller
func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *EventController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// CreateEvent handles POST /events
// @Summary Create event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Router /private/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), ownerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// GetMyEvents handles GET /events
// @Summary List my events
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Router /private/events [get]
func (c *EventController) GetMyEvents(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.EventService.GetMyEvents(ctx.Request().Context(), ownerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Events retrieved successfully")
}

// GetEvent handles GET /events/:id
// @Summary Get event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Router /private/events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.GetEventByID(ctx.Request().Context(), ownerID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event retrieved successfully")
}

// UpdateEvent handles PUT /events/:id
// @Summary Update event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Router /private/events/{id} [put]
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.UpdateEvent(ctx.Request().Context(), ownerID, eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete event
// @Tags Event
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200
// @Router /private/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.EventService.DeleteEvent(ctx.Request().Context(), ownerID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}
