package controller

import (
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/modules/seating/dto"
	"planit-api/modules/seating/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SeatingController handles seating chart HTTP requests
type SeatingController struct {
	controller.BaseController
	SeatingService service.SeatingServiceInterface
}

// NewSeatingController creates a new controller
func NewSeatingController(svc service.SeatingServiceInterface) *SeatingController {
	return &SeatingController{
		BaseController: controller.NewBaseController(),
		SeatingService: svc,
	}
}

func (c *SeatingController) eventID(ctx echo.Context) (uuid.UUID, error) {
	return uuid.Parse(ctx.Param("eventId"))
}

// GetLayout handles GET /events/:eventId/seating
// @Summary Get seating layout
// @Tags Seating
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating [get]
func (c *SeatingController) GetLayout(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.SeatingService.GetLayout(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Seating layout retrieved successfully")
}

// SaveLayout handles PUT /events/:eventId/seating
// @Summary Save seating layout
// @Tags Seating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body dto.SaveLayoutRequest true "Layout document"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating [put]
func (c *SeatingController) SaveLayout(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.SaveLayoutRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeatingService.SaveLayout(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Seating layout saved successfully")
}

// AddTable handles POST /events/:eventId/seating/tables
// @Summary Add table
// @Tags Seating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body dto.AddTableRequest true "Table details"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/tables [post]
func (c *SeatingController) AddTable(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.AddTableRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeatingService.AddTable(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Table added successfully")
}

// UpdateTable handles PUT /events/:eventId/seating/tables/:tableId
// @Summary Update table
// @Tags Seating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param tableId path string true "Table ID"
// @Param request body dto.UpdateTableRequest true "Table patch"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/tables/{tableId} [put]
func (c *SeatingController) UpdateTable(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateTableRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeatingService.UpdateTable(ctx.Request().Context(), eventID, ctx.Param("tableId"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Table updated successfully")
}

// DeleteTable handles DELETE /events/:eventId/seating/tables/:tableId
// @Summary Delete table
// @Tags Seating
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Param tableId path string true "Table ID"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/tables/{tableId} [delete]
func (c *SeatingController) DeleteTable(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.SeatingService.DeleteTable(ctx.Request().Context(), eventID, ctx.Param("tableId"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Table deleted successfully")
}

// Seat handles POST /events/:eventId/seating/seat
// @Summary Seat a guest
// @Tags Seating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body dto.SeatRequest true "Seat assignment"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/seat [post]
func (c *SeatingController) Seat(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.SeatRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeatingService.Seat(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Guest seated successfully")
}

// Unseat handles POST /events/:eventId/seating/unseat
// @Summary Unseat a guest
// @Tags Seating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body dto.UnseatRequest true "Seat removal"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/unseat [post]
func (c *SeatingController) Unseat(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UnseatRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeatingService.Unseat(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Guest unseated successfully")
}

// ClearAll handles DELETE /events/:eventId/seating
// @Summary Clear all tables and assignments
// @Tags Seating
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating [delete]
func (c *SeatingController) ClearAll(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.SeatingService.ClearAll(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Seating cleared successfully")
}

// GetSyncStatus handles GET /events/:eventId/seating/sync/status
// @Summary Check whether guest changes require a sync
// @Tags Seating
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} entity.SyncStatus
// @Router /private/events/{eventId}/seating/sync/status [get]
func (c *SeatingController) GetSyncStatus(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.SeatingService.GetSyncStatus(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Sync status retrieved successfully")
}

// ProcessSync handles POST /events/:eventId/seating/sync/process
// @Summary Reconcile the seating chart with guest changes
// @Tags Seating
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} entity.SyncOutcome
// @Router /private/events/{eventId}/seating/sync/process [post]
func (c *SeatingController) ProcessSync(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.SeatingService.ProcessSync(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Sync processed successfully")
}

// ApplySyncOption handles POST /events/:eventId/seating/sync/options/:optionId/apply
// @Summary Apply a pending sync option
// @Tags Seating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param optionId path string true "Option ID"
// @Param request body dto.ApplyOptionRequest false "Optional custom arrangement"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/sync/options/{optionId}/apply [post]
func (c *SeatingController) ApplySyncOption(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.ApplyOptionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeatingService.ApplySyncOption(ctx.Request().Context(), eventID, ctx.Param("optionId"), req.CustomLayout)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Sync option applied successfully")
}

// MoveToUnassigned handles POST /events/:eventId/seating/sync/unassign
// @Summary Resolve a pending sync by unseating the affected guests
// @Tags Seating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body dto.MoveToUnassignedRequest true "Guests to unseat"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/sync/unassign [post]
func (c *SeatingController) MoveToUnassigned(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.MoveToUnassignedRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeatingService.MoveToUnassigned(ctx.Request().Context(), eventID, req.GuestIDs)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Guests moved to unassigned")
}

// Suggest handles POST /events/:eventId/seating/suggest
// @Summary Request a suggested arrangement
// @Tags Seating
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} dto.LayoutResponse
// @Router /private/events/{eventId}/seating/suggest [post]
func (c *SeatingController) Suggest(ctx echo.Context) error {
	eventID, err := c.eventID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.SeatingService.Suggest(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Suggestion applied successfully")
}
