package export

import (
	"planit-api/core/config"
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/core/storage"
	"planit-api/modules/export/controller"
	"planit-api/modules/export/router"
	"planit-api/modules/export/service"

	eventrepository "planit-api/modules/event/repository"
	guestservice "planit-api/modules/guest/service"
	seatingrepository "planit-api/modules/seating/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the export module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, guestSvc guestservice.GuestServiceInterface) {
	cfg := config.Get()

	eventRepo := eventrepository.NewEventRepository(db)
	layoutRepo := seatingrepository.NewSeatingRepository(db)
	uploader := storage.NewUploader(cfg.Storage)

	svc := service.NewExportService(eventRepo, guestSvc, layoutRepo, uploader)
	ctrl := controller.NewExportController(svc)
	rtr := router.NewExportRouter(ctrl)

	rtr.Setup(e, mw)
}
