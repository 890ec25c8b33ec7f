package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/seating/controller"

	"github.com/labstack/echo/v4"
)

// SeatingRouter handles seating chart routes
type SeatingRouter struct {
	SeatingController *controller.SeatingController
}

// NewSeatingRouter creates a new router
func NewSeatingRouter(seatingController *controller.SeatingController) *SeatingRouter {
	return &SeatingRouter{
		SeatingController: seatingController,
	}
}

// Setup registers seating routes
func (r *SeatingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	seating := privateRoutes.Group("/events/:eventId/seating", mw.AuthMiddleware())
	seating.GET("", r.SeatingController.GetLayout)
	seating.PUT("", r.SeatingController.SaveLayout)
	seating.POST("/tables", r.SeatingController.AddTable)
	seating.PUT("/tables/:tableId", r.SeatingController.UpdateTable)
	seating.DELETE("/tables/:tableId", r.SeatingController.DeleteTable)
	seating.POST("/seat", r.SeatingController.Seat)
	seating.POST("/unseat", r.SeatingController.Unseat)
	seating.DELETE("", r.SeatingController.ClearAll)
	seating.POST("/suggest", r.SeatingController.Suggest)

	seating.GET("/sync/status", r.SeatingController.GetSyncStatus)
	seating.POST("/sync/process", r.SeatingController.ProcessSync)
	seating.POST("/sync/options/:optionId/apply", r.SeatingController.ApplySyncOption)
	seating.POST("/sync/unassign", r.SeatingController.MoveToUnassigned)
}
