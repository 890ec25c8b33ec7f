package event

import (
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/modules/event/controller"
	"planit-api/modules/event/repository"
	"planit-api/modules/event/router"
	"planit-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}
