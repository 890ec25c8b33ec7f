package router

import (
	"planit-api/core/middleware"
	"planit-api/modules/guest/controller"

	"github.com/labstack/echo/v4"
)

// GuestRouter handles guest roster routes
type GuestRouter struct {
	GuestController *controller.GuestController
}

// NewGuestRouter creates a new router
func NewGuestRouter(guestController *controller.GuestController) *GuestRouter {
	return &GuestRouter{
		GuestController: guestController,
	}
}

// Setup registers guest routes
func (r *GuestRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	eventGuests := privateRoutes.Group("/events/:eventId/guests", mw.AuthMiddleware())
	eventGuests.POST("", r.GuestController.CreateGuest)
	eventGuests.GET("", r.GuestController.ListGuests)

	guestRoutes := privateRoutes.Group("/guests", mw.AuthMiddleware())
	guestRoutes.GET("/:id", r.GuestController.GetGuest)
	guestRoutes.PUT("/:id", r.GuestController.UpdateGuest)
	guestRoutes.PATCH("/:id/rsvp", r.GuestController.UpdateRSVP)
	guestRoutes.DELETE("/:id", r.GuestController.DeleteGuest)
}
