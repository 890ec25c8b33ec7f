package controller

import (
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/modules/export/dto"
	"planit-api/modules/export/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExportController handles seating export HTTP requests
type ExportController struct {
	controller.BaseController
	ExportService service.ExportServiceInterface
}

// NewExportController creates a new controller
func NewExportController(svc service.ExportServiceInterface) *ExportController {
	return &ExportController{
		BaseController: controller.NewBaseController(),
		ExportService:  svc,
	}
}

// Export handles POST /events/:eventId/seating/export
// @Summary Export the seating chart
// @Tags Export
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body dto.ExportRequest false "Export format"
// @Success 200 {object} dto.ExportResponse
// @Router /private/events/{eventId}/seating/export [post]
func (c *ExportController) Export(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.ExportRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ExportService.Export(ctx.Request().Context(), eventID, req.Format)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Export generated successfully")
}
