package worker

import (
	"context"
	"encoding/json"

	"planit-api/core/logger"
	"planit-api/core/tasks"
	eventrepository "planit-api/modules/event/repository"
	"planit-api/modules/seating/repository"
	"planit-api/modules/seating/service"

	guestservice "planit-api/modules/guest/service"

	"github.com/hibiken/asynq"
)

// Worker owns the background handlers: the periodic roster poll and the
// deferred layout saves.
type Worker struct {
	events    eventrepository.EventRepositoryInterface
	guests    guestservice.GuestServiceInterface
	layouts   repository.SeatingRepositoryInterface
	syncState repository.SyncStateRepositoryInterface
}

// NewWorker creates a new seating worker
func NewWorker(
	events eventrepository.EventRepositoryInterface,
	guests guestservice.GuestServiceInterface,
	layouts repository.SeatingRepositoryInterface,
	syncState repository.SyncStateRepositoryInterface,
) *Worker {
	return &Worker{
		events:    events,
		guests:    guests,
		layouts:   layouts,
		syncState: syncState,
	}
}

// Register attaches the handlers to the asynq mux
func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(tasks.TypeSeatingSyncPoll, w.HandleSyncPoll)
	mux.HandleFunc(tasks.TypeSeatingAutosave, w.HandleAutosave)
}

// HandleSyncPoll walks every event with a seating layout and refreshes its
// pending trigger count. It only detects drift; reconciliation itself runs on
// request so the planner sees what changed. Events mid-sync are skipped.
func (w *Worker) HandleSyncPoll(ctx context.Context, _ *asynq.Task) error {
	eventIDs, err := w.events.GetEventIDsWithSeating(ctx)
	if err != nil {
		logger.Error("Worker:HandleSyncPoll list events", "error", err)
		return err
	}

	for _, eventID := range eventIDs {
		fp, found, err := w.syncState.GetFingerprint(ctx, eventID)
		if err != nil {
			logger.Warn("Worker:HandleSyncPoll fingerprint", "eventId", eventID, "error", err)
			continue
		}

		guests, appErr := w.guests.ListGuestEntities(ctx, eventID)
		if appErr != nil {
			logger.Warn("Worker:HandleSyncPoll guests", "eventId", eventID, "error", appErr)
			continue
		}

		if !found {
			if err := w.syncState.SetFingerprint(ctx, eventID, service.Snapshot(guests)); err != nil {
				logger.Warn("Worker:HandleSyncPoll baseline", "eventId", eventID, "error", err)
			}
			continue
		}

		changes := service.Diff(fp, guests)
		if err := w.syncState.SetPendingTriggers(ctx, eventID, len(changes)); err != nil {
			logger.Warn("Worker:HandleSyncPoll triggers", "eventId", eventID, "error", err)
			continue
		}
		if len(changes) > 0 {
			logger.Info("Worker:HandleSyncPoll drift detected", "eventId", eventID, "triggers", len(changes))
		}
	}

	return nil
}

// HandleAutosave persists a layout flushed out of the debounce window
func (w *Worker) HandleAutosave(ctx context.Context, t *asynq.Task) error {
	var payload service.AutosavePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("Worker:HandleAutosave decode", "error", err)
		return err
	}
	if payload.Layout == nil {
		return nil
	}

	if err := w.layouts.SaveLayout(ctx, payload.EventID, payload.Layout); err != nil {
		logger.Error("Worker:HandleAutosave save", "eventId", payload.EventID, "error", err)
		return err
	}

	logger.Debug("Worker:HandleAutosave saved", "eventId", payload.EventID)
	return nil
}
