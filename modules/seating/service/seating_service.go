package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"planit-api/core/constants"
	"planit-api/core/errors"
	"planit-api/core/logger"
	"planit-api/core/tasks"
	"planit-api/modules/seating/dto"
	"planit-api/modules/seating/entity"
	"planit-api/modules/seating/repository"

	guestentity "planit-api/modules/guest/entity"
	guestservice "planit-api/modules/guest/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the slice of asynq.Client the service uses; nil falls back to
// saving synchronously (used in tests).
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AutosavePayload is the body of a deferred persistence task
type AutosavePayload struct {
	EventID uuid.UUID      `json:"event_id"`
	Layout  *entity.Layout `json:"layout"`
}

// SeatingService orchestrates the seating core: manual edit operations with
// debounced persistence, and the sync/reconciliation cycle. The in-memory
// layout cache is the source of truth between saves; every operation reads the
// latest cached state, never a captured snapshot. Operations on the same event
// are serialized through a per-event mutex, so concurrent requests cannot
// interleave their load-mutate-save cycles.
type SeatingService struct {
	repo      repository.SeatingRepositoryInterface
	syncState repository.SyncStateRepositoryInterface
	guests    guestservice.GuestServiceInterface
	scheduler SaveScheduler
	enqueuer  TaskEnqueuer
	suggester *SuggestionClient

	mu    sync.Mutex
	cache map[uuid.UUID]*entity.Layout
	locks map[uuid.UUID]*sync.Mutex
}

// SeatingServiceInterface defines the service contract
type SeatingServiceInterface interface {
	GetLayout(ctx context.Context, eventID uuid.UUID) (*dto.LayoutResponse, *errors.AppError)
	SaveLayout(ctx context.Context, eventID uuid.UUID, req *dto.SaveLayoutRequest) (*dto.LayoutResponse, *errors.AppError)
	AddTable(ctx context.Context, eventID uuid.UUID, req *dto.AddTableRequest) (*dto.LayoutResponse, *errors.AppError)
	UpdateTable(ctx context.Context, eventID uuid.UUID, tableID string, req *dto.UpdateTableRequest) (*dto.LayoutResponse, *errors.AppError)
	DeleteTable(ctx context.Context, eventID uuid.UUID, tableID string) (*dto.LayoutResponse, *errors.AppError)
	Seat(ctx context.Context, eventID uuid.UUID, req *dto.SeatRequest) (*dto.LayoutResponse, *errors.AppError)
	Unseat(ctx context.Context, eventID uuid.UUID, req *dto.UnseatRequest) (*dto.LayoutResponse, *errors.AppError)
	ClearAll(ctx context.Context, eventID uuid.UUID) (*dto.LayoutResponse, *errors.AppError)
	GetSyncStatus(ctx context.Context, eventID uuid.UUID) (*entity.SyncStatus, *errors.AppError)
	ProcessSync(ctx context.Context, eventID uuid.UUID) (*entity.SyncOutcome, *errors.AppError)
	ApplySyncOption(ctx context.Context, eventID uuid.UUID, optionID string, custom *entity.Layout) (*dto.LayoutResponse, *errors.AppError)
	MoveToUnassigned(ctx context.Context, eventID uuid.UUID, guestIDs []string) (*dto.LayoutResponse, *errors.AppError)
	Suggest(ctx context.Context, eventID uuid.UUID) (*dto.LayoutResponse, *errors.AppError)
}

// NewSeatingService creates a new seating service
func NewSeatingService(
	repo repository.SeatingRepositoryInterface,
	syncState repository.SyncStateRepositoryInterface,
	guests guestservice.GuestServiceInterface,
	scheduler SaveScheduler,
	enqueuer TaskEnqueuer,
	suggester *SuggestionClient,
) SeatingServiceInterface {
	return &SeatingService{
		repo:      repo,
		syncState: syncState,
		guests:    guests,
		scheduler: scheduler,
		enqueuer:  enqueuer,
		suggester: suggester,
		cache:     map[uuid.UUID]*entity.Layout{},
		locks:     map[uuid.UUID]*sync.Mutex{},
	}
}

// eventLock returns the mutex serializing all layout access for one event
func (s *SeatingService) eventLock(eventID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lk, ok := s.locks[eventID]
	if !ok {
		lk = &sync.Mutex{}
		s.locks[eventID] = lk
	}
	return lk
}

// loadState returns the latest state for an event: the cached layout when
// present, otherwise the persisted one (missing = empty initial state), plus a
// fresh roster read. Callers must hold the event lock.
func (s *SeatingService) loadState(ctx context.Context, eventID uuid.UUID) (*State, []guestentity.Guest, *errors.AppError) {
	s.mu.Lock()
	layout, ok := s.cache[eventID]
	s.mu.Unlock()

	if !ok {
		loaded, err := s.repo.LoadLayout(ctx, eventID)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load seating layout", err)
		}
		if loaded == nil {
			loaded = entity.NewLayout()
		}
		s.mu.Lock()
		if cached, exists := s.cache[eventID]; exists {
			loaded = cached
		} else {
			s.cache[eventID] = loaded
		}
		layout = loaded
		s.mu.Unlock()
	}

	guests, appErr := s.guests.ListGuestEntities(ctx, eventID)
	if appErr != nil {
		return nil, nil, appErr
	}

	return NewState(layout, guests), guests, nil
}

// replaceLayout swaps the cached layout wholesale (atomic apply)
func (s *SeatingService) replaceLayout(eventID uuid.UUID, layout *entity.Layout) {
	s.mu.Lock()
	s.cache[eventID] = layout
	s.mu.Unlock()
}

// scheduleSave defers persistence until edits quiet down; the deferred flush
// hands off to the background worker. A failed save is logged and the cached
// state stays authoritative until the next successful one. Callers hold the
// event lock; the deferred callback re-acquires it before touching the layout.
func (s *SeatingService) scheduleSave(eventID uuid.UUID) {
	if s.scheduler == nil {
		s.persistLocked(context.Background(), eventID)
		return
	}
	s.scheduler.Schedule(eventID.String(), func() {
		s.persistNow(context.Background(), eventID)
	})
}

func (s *SeatingService) persistNow(ctx context.Context, eventID uuid.UUID) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()
	s.persistLocked(ctx, eventID)
}

// persistLocked serializes and saves the cached layout; the event lock must be
// held so a concurrent edit cannot mutate the layout mid-marshal.
func (s *SeatingService) persistLocked(ctx context.Context, eventID uuid.UUID) {
	s.mu.Lock()
	layout := s.cache[eventID]
	s.mu.Unlock()
	if layout == nil {
		return
	}

	if s.enqueuer != nil {
		payload, err := json.Marshal(AutosavePayload{EventID: eventID, Layout: layout})
		if err == nil {
			task := asynq.NewTask(tasks.TypeSeatingAutosave, payload,
				asynq.Queue(constants.QueueSeating), asynq.MaxRetry(0))
			if _, err := s.enqueuer.Enqueue(task); err == nil {
				return
			}
			logger.Warn("SeatingService:persistLocked enqueue failed, saving inline", "eventId", eventID)
		}
	}

	if err := s.repo.SaveLayout(ctx, eventID, layout); err != nil {
		logger.Error("SeatingService:persistLocked", "eventId", eventID, "error", err)
	}
}

// captureBaselineIfMissing stores the first fingerprint after a successful
// load. Baseline capture never triggers a reconciliation.
func (s *SeatingService) captureBaselineIfMissing(ctx context.Context, eventID uuid.UUID, guests []guestentity.Guest) {
	_, found, err := s.syncState.GetFingerprint(ctx, eventID)
	if err != nil || found {
		return
	}
	if err := s.syncState.SetFingerprint(ctx, eventID, Snapshot(guests)); err != nil {
		logger.Warn("SeatingService:captureBaselineIfMissing", "eventId", eventID, "error", err)
	}
}

// ===================== Layout & manual operations =====================

// GetLayout loads the seating document for an event
func (s *SeatingService) GetLayout(ctx context.Context, eventID uuid.UUID) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	s.captureBaselineIfMissing(ctx, eventID, guests)
	return dto.ToLayoutResponse(st.Layout, guests), nil
}

// SaveLayout replaces the stored layout with a client-provided document and
// persists immediately (explicit save, no debounce).
func (s *SeatingService) SaveLayout(ctx context.Context, eventID uuid.UUID, req *dto.SaveLayoutRequest) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	layout := &entity.Layout{
		Tables:         req.Tables,
		Arrangement:    req.Arrangement,
		ManualNames:    req.ManualNames,
		Preferences:    req.Preferences,
		LayoutSettings: req.LayoutSettings,
	}
	if layout.Tables == nil {
		layout.Tables = []entity.Table{}
	}
	if layout.Arrangement == nil {
		layout.Arrangement = map[string][]entity.EntityKey{}
	}
	if layout.ManualNames == nil {
		layout.ManualNames = map[string]bool{}
	}

	s.replaceLayout(eventID, layout)
	if err := s.repo.SaveLayout(ctx, eventID, layout); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save seating layout", err)
	}

	guests, appErr := s.guests.ListGuestEntities(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToLayoutResponse(layout, guests), nil
}

// AddTable creates a table and schedules a save
func (s *SeatingService) AddTable(ctx context.Context, eventID uuid.UUID, req *dto.AddTableRequest) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	if _, appErr := st.AddTable(entity.TableShape(req.Shape), req.Capacity, req.PosX, req.PosY); appErr != nil {
		return nil, appErr
	}

	s.scheduleSave(eventID)
	return dto.ToLayoutResponse(st.Layout, guests), nil
}

// UpdateTable edits a table and schedules a save
func (s *SeatingService) UpdateTable(ctx context.Context, eventID uuid.UUID, tableID string, req *dto.UpdateTableRequest) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	patch := TablePatch{
		Name:     req.Name,
		Capacity: req.Capacity,
		PosX:     req.PosX,
		PosY:     req.PosY,
		Width:    req.Width,
		Height:   req.Height,
	}
	if req.Shape != nil {
		shape := entity.TableShape(*req.Shape)
		patch.Shape = &shape
	}
	if req.Affinity != nil {
		affinity := entity.GenderAffinity(*req.Affinity)
		patch.Affinity = &affinity
	}

	if appErr := st.UpdateTable(tableID, patch); appErr != nil {
		return nil, appErr
	}

	s.scheduleSave(eventID)
	return dto.ToLayoutResponse(st.Layout, guests), nil
}

// DeleteTable removes a table; its guests become unseated
func (s *SeatingService) DeleteTable(ctx context.Context, eventID uuid.UUID, tableID string) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := st.DeleteTable(tableID); appErr != nil {
		return nil, appErr
	}

	s.scheduleSave(eventID)
	return dto.ToLayoutResponse(st.Layout, guests), nil
}

func parsePartition(raw string) entity.Partition {
	switch entity.Partition(raw) {
	case entity.PartitionMale, entity.PartitionFemale:
		return entity.Partition(raw)
	default:
		return entity.PartitionUnified
	}
}

// Seat places a guest entity at a table
func (s *SeatingService) Seat(ctx context.Context, eventID uuid.UUID, req *dto.SeatRequest) (*dto.LayoutResponse, *errors.AppError) {
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid guest ID", err)
	}

	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	key := entity.EntityKey{GuestID: guestID, Partition: parsePartition(req.Partition)}
	if appErr := st.Seat(key, req.TableID); appErr != nil {
		return nil, appErr
	}

	s.scheduleSave(eventID)
	return dto.ToLayoutResponse(st.Layout, guests), nil
}

// Unseat removes a guest entity from its table; a no-op when not seated
func (s *SeatingService) Unseat(ctx context.Context, eventID uuid.UUID, req *dto.UnseatRequest) (*dto.LayoutResponse, *errors.AppError) {
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid guest ID", err)
	}

	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	st.Unseat(entity.EntityKey{GuestID: guestID, Partition: parsePartition(req.Partition)})

	s.scheduleSave(eventID)
	return dto.ToLayoutResponse(st.Layout, guests), nil
}

// ClearAll empties the registry and arrangement and resets the fingerprint, so
// the next sync cycle establishes a fresh baseline.
func (s *SeatingService) ClearAll(ctx context.Context, eventID uuid.UUID) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	st.ClearAll()
	if err := s.syncState.ClearFingerprint(ctx, eventID); err != nil {
		logger.Warn("SeatingService:ClearAll fingerprint", "eventId", eventID, "error", err)
	}
	if err := s.syncState.ClearPendingOptions(ctx, eventID); err != nil {
		logger.Warn("SeatingService:ClearAll options", "eventId", eventID, "error", err)
	}
	_ = s.syncState.SetPendingTriggers(ctx, eventID, 0)

	if s.scheduler != nil {
		s.scheduler.Cancel(eventID.String())
	}
	if err := s.repo.SaveLayout(ctx, eventID, st.Layout); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save cleared layout", err)
	}

	return dto.ToLayoutResponse(st.Layout, guests), nil
}

// ===================== Sync cycle =====================

// GetSyncStatus reports whether the roster has drifted from the fingerprint
func (s *SeatingService) GetSyncStatus(ctx context.Context, eventID uuid.UUID) (*entity.SyncStatus, *errors.AppError) {
	guests, appErr := s.guests.ListGuestEntities(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	fp, found, err := s.syncState.GetFingerprint(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to read sync state", err)
	}
	if !found {
		s.captureBaselineIfMissing(ctx, eventID, guests)
		return &entity.SyncStatus{}, nil
	}

	changes := Diff(fp, guests)
	if err := s.syncState.SetPendingTriggers(ctx, eventID, len(changes)); err != nil {
		logger.Warn("SeatingService:GetSyncStatus triggers", "eventId", eventID, "error", err)
	}

	return &entity.SyncStatus{
		SyncRequired:    len(changes) > 0,
		PendingTriggers: len(changes),
	}, nil
}

// ProcessSync runs the reconciliation engine against the latest state. An
// auto-applied result replaces the layout and advances the fingerprint in one
// step; an ambiguous batch stores its options and waits for the planner.
func (s *SeatingService) ProcessSync(ctx context.Context, eventID uuid.UUID) (*entity.SyncOutcome, *errors.AppError) {
	acquired, err := s.syncState.AcquireSyncLock(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to acquire sync lock", err)
	}
	if !acquired {
		return nil, errors.NewAppError(errors.ErrSyncInProgress, "A sync is already in progress for this event", nil)
	}
	defer func() {
		_ = s.syncState.ReleaseSyncLock(ctx, eventID)
	}()

	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	fp, found, err := s.syncState.GetFingerprint(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to read sync state", err)
	}
	if !found {
		s.captureBaselineIfMissing(ctx, eventID, guests)
		return &entity.SyncOutcome{Message: "Baseline captured"}, nil
	}

	changes := Diff(fp, guests)
	outcome := Reconcile(st, changes)

	if !outcome.HasChanges {
		_ = s.syncState.SetPendingTriggers(ctx, eventID, 0)
		return outcome, nil
	}

	if outcome.RequiresUserDecision {
		if err := s.syncState.SetPendingOptions(ctx, eventID, outcome.Options); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to store sync options", err)
		}
		_ = s.syncState.SetPendingTriggers(ctx, eventID, len(changes))
		return outcome, nil
	}

	// Auto-apply: atomic replacement, then advance the fingerprint so an
	// immediate re-run detects nothing.
	s.replaceLayout(eventID, outcome.Layout)
	if err := s.repo.SaveLayout(ctx, eventID, outcome.Layout); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save reconciled layout", err)
	}
	if err := s.syncState.SetFingerprint(ctx, eventID, Snapshot(guests)); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to advance fingerprint", err)
	}
	_ = s.syncState.ClearPendingOptions(ctx, eventID)
	_ = s.syncState.SetPendingTriggers(ctx, eventID, 0)

	return outcome, nil
}

// ApplySyncOption applies a previously offered option (or a custom layout based
// on one) as a single atomic replacement.
func (s *SeatingService) ApplySyncOption(ctx context.Context, eventID uuid.UUID, optionID string, custom *entity.Layout) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	options, err := s.syncState.GetPendingOptions(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to read pending options", err)
	}

	var chosen *entity.SyncOption
	for i := range options {
		if options[i].ID == optionID {
			chosen = &options[i]
			break
		}
	}
	if chosen == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Sync option not found or expired", nil)
	}

	layout := chosen.Result
	if custom != nil {
		layout = custom
	}
	if layout == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Sync option carries no layout", nil)
	}

	guests, appErr := s.guests.ListGuestEntities(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	s.replaceLayout(eventID, layout)
	if err := s.repo.SaveLayout(ctx, eventID, layout); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save chosen layout", err)
	}
	if err := s.syncState.SetFingerprint(ctx, eventID, Snapshot(guests)); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to advance fingerprint", err)
	}
	_ = s.syncState.ClearPendingOptions(ctx, eventID)
	_ = s.syncState.SetPendingTriggers(ctx, eventID, 0)

	return dto.ToLayoutResponse(layout, guests), nil
}

// MoveToUnassigned is the built-in fallback: unseat the affected guests and
// accept the roster as reconciled.
func (s *SeatingService) MoveToUnassigned(ctx context.Context, eventID uuid.UUID, guestIDs []string) (*dto.LayoutResponse, *errors.AppError) {
	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	for _, raw := range guestIDs {
		guestID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Invalid guest ID %q", raw), err)
		}
		for _, p := range []entity.Partition{entity.PartitionUnified, entity.PartitionMale, entity.PartitionFemale} {
			st.Unseat(entity.EntityKey{GuestID: guestID, Partition: p})
		}
	}

	if err := s.repo.SaveLayout(ctx, eventID, st.Layout); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save layout", err)
	}
	if err := s.syncState.SetFingerprint(ctx, eventID, Snapshot(guests)); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to advance fingerprint", err)
	}
	_ = s.syncState.ClearPendingOptions(ctx, eventID)
	_ = s.syncState.SetPendingTriggers(ctx, eventID, 0)

	return dto.ToLayoutResponse(st.Layout, guests), nil
}

// Suggest asks the external suggestion service for an arrangement and seeds it
// through the normal table/seat operations.
func (s *SeatingService) Suggest(ctx context.Context, eventID uuid.UUID) (*dto.LayoutResponse, *errors.AppError) {
	if s.suggester == nil || !s.suggester.Enabled() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Suggestion service is not configured", nil)
	}

	lk := s.eventLock(eventID)
	lk.Lock()
	defer lk.Unlock()

	st, guests, appErr := s.loadState(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	suggestion, err := s.suggester.Suggest(ctx, guests, st.Layout)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Suggestion service failed", err)
	}

	var createdIDs []string
	for _, suggested := range suggestion.Tables {
		capacity := suggested.Capacity
		if capacity < entity.MinTableCapacity {
			capacity = entity.MinTableCapacity
		}
		if capacity > entity.MaxTableCapacity {
			capacity = entity.MaxTableCapacity
		}
		for i := 0; i < suggested.Count; i++ {
			t, appErr := st.AddTable(entity.TableRound, capacity, 0, 0)
			if appErr != nil {
				continue
			}
			createdIDs = append(createdIDs, t.ID)
		}
	}

	for _, a := range suggestion.Assignments {
		guestID, err := uuid.Parse(a.GuestID)
		if err != nil || a.TableIndex < 0 || a.TableIndex >= len(createdIDs) {
			continue
		}
		key := entity.EntityKey{GuestID: guestID, Partition: parsePartition(a.Partition)}
		// Suggestions get no special trust: a seat that violates capacity or
		// affinity is skipped like any other invalid manual action.
		if appErr := st.Seat(key, createdIDs[a.TableIndex]); appErr != nil {
			logger.Debug("SeatingService:Suggest skipped assignment", "guestId", a.GuestID, "error", appErr)
		}
	}

	s.scheduleSave(eventID)
	return dto.ToLayoutResponse(st.Layout, guests), nil
}
