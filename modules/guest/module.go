package guest

import (
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/guest/controller"
	"planit-api/modules/guest/repository"
	"planit-api/modules/guest/router"
	"planit-api/modules/guest/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the guest module and registers routes.
// The returned service is shared with the seating module, which consumes the
// roster through it.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.GuestServiceInterface {
	repo := repository.NewGuestRepository(db)
	svc := service.NewGuestService(repo)
	ctrl := controller.NewGuestController(svc)
	rtr := router.NewGuestRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
