package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/export/controller"

	"github.com/labstack/echo/v4"
)

// ExportRouter handles export routes
type ExportRouter struct {
	ExportController *controller.ExportController
}

// NewExportRouter creates a new router
func NewExportRouter(exportController *controller.ExportController) *ExportRouter {
	return &ExportRouter{
		ExportController: exportController,
	}
}

// Setup registers export routes
func (r *ExportRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	privateRoutes.POST("/events/:eventId/seating/export", r.ExportController.Export, mw.AuthMiddleware())
}
