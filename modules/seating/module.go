package seating

import (
	"time"

	"planit-api/core/config"
	"planit-api/core/database"
	"planit-api/core/middleware"
	"planit-api/core/tasks"
	eventrepository "planit-api/modules/event/repository"
	"planit-api/modules/seating/controller"
	"planit-api/modules/seating/repository"
	"planit-api/modules/seating/router"
	"planit-api/modules/seating/service"
	"planit-api/modules/seating/worker"

	guestservice "planit-api/modules/guest/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Init initializes the seating module: HTTP routes plus the background
// handlers for the roster poll and deferred saves. The guest service is
// injected from the guest module so both read the same roster.
func Init(
	e *echo.Echo,
	db database.Database,
	rdb *redis.Client,
	mw *middleware.Middleware,
	guestSvc guestservice.GuestServiceInterface,
	mux *asynq.ServeMux,
) service.SeatingServiceInterface {
	cfg := config.Get()

	repo := repository.NewSeatingRepository(db)
	syncState := repository.NewSyncStateRepository(rdb)
	scheduler := service.NewDebounceScheduler(time.Duration(cfg.Seating.AutosaveDebounceSeconds) * time.Second)
	suggester := service.NewSuggestionClient(cfg.Seating.SuggestionServiceURL)

	svc := service.NewSeatingService(repo, syncState, guestSvc, scheduler, tasks.GetClient(), suggester)
	ctrl := controller.NewSeatingController(svc)
	rtr := router.NewSeatingRouter(ctrl)
	rtr.Setup(e, mw)

	if mux != nil {
		eventRepo := eventrepository.NewEventRepository(db)
		w := worker.NewWorker(eventRepo, guestSvc, repo, syncState)
		w.Register(mux)
	}

	return svc
}
