package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())

	eventRoutes.POST("", r.EventController.CreateEvent)
	eventRoutes.GET("", r.EventController.GetMyEvents)
	eventRoutes.GET("/:id", r.EventController.GetEvent)
	eventRoutes.PUT("/:id", r.EventController.UpdateEvent)
	eventRoutes.DELETE("/:id", r.EventController.DeleteEvent)
}
