package service

import (
	"context"
	"sync"
	"testing"

	"planit-api/core/errors"
	"planit-api/modules/seating/dto"
	"planit-api/modules/seating/entity"

	guestdto "planit-api/modules/guest/dto"
	guestentity "planit-api/modules/guest/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeatingRepo struct {
	layouts map[uuid.UUID]*entity.Layout
	saves   int
}

func newFakeSeatingRepo() *fakeSeatingRepo {
	return &fakeSeatingRepo{layouts: map[uuid.UUID]*entity.Layout{}}
}

func (r *fakeSeatingRepo) LoadLayout(_ context.Context, eventID uuid.UUID) (*entity.Layout, error) {
	return r.layouts[eventID], nil
}

func (r *fakeSeatingRepo) SaveLayout(_ context.Context, eventID uuid.UUID, layout *entity.Layout) error {
	r.layouts[eventID] = layout
	r.saves++
	return nil
}

func (r *fakeSeatingRepo) DeleteLayout(_ context.Context, eventID uuid.UUID) error {
	delete(r.layouts, eventID)
	return nil
}

type fakeSyncState struct {
	fingerprints map[uuid.UUID][]entity.GuestFingerprint
	options      map[uuid.UUID][]entity.SyncOption
	triggers     map[uuid.UUID]int
	locks        map[uuid.UUID]bool
}

func newFakeSyncState() *fakeSyncState {
	return &fakeSyncState{
		fingerprints: map[uuid.UUID][]entity.GuestFingerprint{},
		options:      map[uuid.UUID][]entity.SyncOption{},
		triggers:     map[uuid.UUID]int{},
		locks:        map[uuid.UUID]bool{},
	}
}

func (s *fakeSyncState) GetFingerprint(_ context.Context, eventID uuid.UUID) ([]entity.GuestFingerprint, bool, error) {
	fp, ok := s.fingerprints[eventID]
	return fp, ok, nil
}

func (s *fakeSyncState) SetFingerprint(_ context.Context, eventID uuid.UUID, fps []entity.GuestFingerprint) error {
	s.fingerprints[eventID] = fps
	return nil
}

func (s *fakeSyncState) ClearFingerprint(_ context.Context, eventID uuid.UUID) error {
	delete(s.fingerprints, eventID)
	return nil
}

func (s *fakeSyncState) GetPendingOptions(_ context.Context, eventID uuid.UUID) ([]entity.SyncOption, error) {
	return s.options[eventID], nil
}

func (s *fakeSyncState) SetPendingOptions(_ context.Context, eventID uuid.UUID, options []entity.SyncOption) error {
	s.options[eventID] = options
	return nil
}

func (s *fakeSyncState) ClearPendingOptions(_ context.Context, eventID uuid.UUID) error {
	delete(s.options, eventID)
	return nil
}

func (s *fakeSyncState) SetPendingTriggers(_ context.Context, eventID uuid.UUID, count int) error {
	s.triggers[eventID] = count
	return nil
}

func (s *fakeSyncState) GetPendingTriggers(_ context.Context, eventID uuid.UUID) (int, error) {
	return s.triggers[eventID], nil
}

func (s *fakeSyncState) AcquireSyncLock(_ context.Context, eventID uuid.UUID) (bool, error) {
	if s.locks[eventID] {
		return false, nil
	}
	s.locks[eventID] = true
	return true, nil
}

func (s *fakeSyncState) ReleaseSyncLock(_ context.Context, eventID uuid.UUID) error {
	delete(s.locks, eventID)
	return nil
}

type fakeGuestService struct {
	guests map[uuid.UUID][]guestentity.Guest
}

func newFakeGuestService() *fakeGuestService {
	return &fakeGuestService{guests: map[uuid.UUID][]guestentity.Guest{}}
}

func (s *fakeGuestService) ListGuestEntities(_ context.Context, eventID uuid.UUID) ([]guestentity.Guest, *errors.AppError) {
	return s.guests[eventID], nil
}

func (s *fakeGuestService) CreateGuest(context.Context, uuid.UUID, *guestdto.CreateGuestRequest) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) GetGuestByID(context.Context, uuid.UUID) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) ListGuests(context.Context, uuid.UUID) ([]guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) UpdateGuest(context.Context, uuid.UUID, *guestdto.UpdateGuestRequest) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) UpdateRSVP(context.Context, uuid.UUID, *guestdto.UpdateRSVPRequest) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) DeleteGuest(context.Context, uuid.UUID) *errors.AppError {
	return nil
}

type serviceFixture struct {
	svc       SeatingServiceInterface
	repo      *fakeSeatingRepo
	syncState *fakeSyncState
	guests    *fakeGuestService
	eventID   uuid.UUID
}

// newServiceFixture wires the service with a nil scheduler and enqueuer, so
// every save happens inline.
func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	repo := newFakeSeatingRepo()
	syncState := newFakeSyncState()
	guests := newFakeGuestService()
	svc := NewSeatingService(repo, syncState, guests, nil, nil, nil)
	return &serviceFixture{
		svc:       svc,
		repo:      repo,
		syncState: syncState,
		guests:    guests,
		eventID:   uuid.New(),
	}
}

func (f *serviceFixture) setGuests(gs ...guestentity.Guest) {
	f.guests.guests[f.eventID] = gs
}

func TestGetLayoutCapturesBaselineFingerprint(t *testing.T) {
	f := newServiceFixture(t)
	f.setGuests(makeGuest("Alice", guestentity.GroupFamily, 2))

	resp, appErr := f.svc.GetLayout(context.Background(), f.eventID)
	require.Nil(t, appErr)
	assert.Empty(t, resp.Tables)
	assert.Len(t, resp.Unassigned, 1)

	fp, found, _ := f.syncState.GetFingerprint(context.Background(), f.eventID)
	assert.True(t, found)
	assert.Len(t, fp, 1)
}

func TestAddTableThenSeatFlow(t *testing.T) {
	f := newServiceFixture(t)
	g := makeGuest("Alice", guestentity.GroupFamily, 2)
	f.setGuests(g)
	ctx := context.Background()

	resp, appErr := f.svc.AddTable(ctx, f.eventID, &dto.AddTableRequest{Shape: "round", Capacity: 8})
	require.Nil(t, appErr)
	require.Len(t, resp.Tables, 1)
	tableID := resp.Tables[0].ID

	resp, appErr = f.svc.Seat(ctx, f.eventID, &dto.SeatRequest{
		GuestID: g.ID.String(),
		TableID: tableID,
	})
	require.Nil(t, appErr)
	assert.Equal(t, 2, resp.Tables[0].Occupancy)
	assert.Empty(t, resp.Unassigned)

	// With no scheduler the save lands synchronously
	assert.NotNil(t, f.repo.layouts[f.eventID])
}

func TestConcurrentAddTableSerializesPerEvent(t *testing.T) {
	f := newServiceFixture(t)
	f.setGuests(makeGuest("Alice", guestentity.GroupFamily, 2))
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, appErr := f.svc.AddTable(ctx, f.eventID, &dto.AddTableRequest{Shape: "round", Capacity: 8})
			assert.Nil(t, appErr)
		}()
	}
	wg.Wait()

	resp, appErr := f.svc.GetLayout(ctx, f.eventID)
	require.Nil(t, appErr)
	require.Len(t, resp.Tables, workers)

	numbers := map[int]bool{}
	for _, tbl := range resp.Tables {
		assert.False(t, numbers[tbl.Number], "table number %d assigned twice", tbl.Number)
		numbers[tbl.Number] = true
	}
}

func TestProcessSyncFirstRunCapturesBaseline(t *testing.T) {
	f := newServiceFixture(t)
	f.setGuests(makeGuest("Alice", guestentity.GroupFamily, 2))

	outcome, appErr := f.svc.ProcessSync(context.Background(), f.eventID)
	require.Nil(t, appErr)
	assert.False(t, outcome.HasChanges)

	_, found, _ := f.syncState.GetFingerprint(context.Background(), f.eventID)
	assert.True(t, found)
}

func TestProcessSyncAppliesAndAdvancesFingerprint(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	existing := makeGuest("Alice", guestentity.GroupFamily, 2)
	f.setGuests(existing)

	// Baseline with just Alice
	_, appErr := f.svc.ProcessSync(ctx, f.eventID)
	require.Nil(t, appErr)

	// Bob confirms afterwards
	arrived := makeGuest("Bob", guestentity.GroupFriends, 3)
	f.setGuests(existing, arrived)

	outcome, appErr := f.svc.ProcessSync(ctx, f.eventID)
	require.Nil(t, appErr)
	require.True(t, outcome.HasChanges)
	assert.False(t, outcome.RequiresUserDecision)
	assert.NotEmpty(t, outcome.Actions)

	// An immediate re-run detects nothing: the fingerprint advanced with
	// the apply.
	again, appErr := f.svc.ProcessSync(ctx, f.eventID)
	require.Nil(t, appErr)
	assert.False(t, again.HasChanges)
}

func TestProcessSyncRejectsConcurrentRun(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.setGuests(makeGuest("Alice", guestentity.GroupFamily, 2))

	f.syncState.locks[f.eventID] = true

	_, appErr := f.svc.ProcessSync(ctx, f.eventID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrSyncInProgress, appErr.Code)
}

func TestProcessSyncEscalationKeepsFingerprint(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	a := makeGuest("Alice", guestentity.GroupFamily, 4)
	b := makeGuest("Bob", guestentity.GroupFriends, 4)
	f.setGuests(a, b)

	// Seed a layout with both guests seated at small tables
	layout := entity.NewLayout()
	layout.Tables = []entity.Table{makeTable("t1", 1, 8), makeTable("t2", 2, 8)}
	layout.Arrangement["t1"] = []entity.EntityKey{entity.UnifiedKey(a.ID)}
	layout.Arrangement["t2"] = []entity.EntityKey{entity.UnifiedKey(b.ID)}
	require.Nil(t, f.repo.SaveLayout(ctx, f.eventID, layout))

	_, appErr := f.svc.ProcessSync(ctx, f.eventID) // baseline
	require.Nil(t, appErr)
	fpBefore := f.syncState.fingerprints[f.eventID]

	// Both parties outgrow their tables at once
	grownA := a
	grownA.AttendingCount = 10
	grownB := b
	grownB.AttendingCount = 10
	f.setGuests(grownA, grownB)

	outcome, appErr := f.svc.ProcessSync(ctx, f.eventID)
	require.Nil(t, appErr)
	require.True(t, outcome.RequiresUserDecision)
	require.Len(t, outcome.Options, 2)

	// No option chosen yet: the fingerprint must not advance and the
	// options must be retrievable for the apply step.
	assert.Equal(t, fpBefore, f.syncState.fingerprints[f.eventID])
	stored, _ := f.syncState.GetPendingOptions(ctx, f.eventID)
	assert.Len(t, stored, 2)
}

func TestApplySyncOptionResolvesEscalation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	a := makeGuest("Alice", guestentity.GroupFamily, 10)
	b := makeGuest("Bob", guestentity.GroupFriends, 10)
	f.setGuests(a, b)

	layout := entity.NewLayout()
	layout.Tables = []entity.Table{makeTable("t1", 1, 8), makeTable("t2", 2, 8)}
	layout.Arrangement["t1"] = []entity.EntityKey{entity.UnifiedKey(a.ID)}
	layout.Arrangement["t2"] = []entity.EntityKey{entity.UnifiedKey(b.ID)}
	require.Nil(t, f.repo.SaveLayout(ctx, f.eventID, layout))

	// Baseline against the old counts, then grow both parties
	small := a
	small.AttendingCount = 4
	smallB := b
	smallB.AttendingCount = 4
	require.Nil(t, f.syncState.SetFingerprint(ctx, f.eventID, Snapshot([]guestentity.Guest{small, smallB})))

	outcome, appErr := f.svc.ProcessSync(ctx, f.eventID)
	require.Nil(t, appErr)
	require.True(t, outcome.RequiresUserDecision)

	resp, appErr := f.svc.ApplySyncOption(ctx, f.eventID, outcome.Options[0].ID, nil)
	require.Nil(t, appErr)
	require.NotNil(t, resp)

	// Applying consumed the options and advanced the fingerprint
	stored, _ := f.syncState.GetPendingOptions(ctx, f.eventID)
	assert.Empty(t, stored)
	again, appErr := f.svc.ProcessSync(ctx, f.eventID)
	require.Nil(t, appErr)
	assert.False(t, again.HasChanges)
}

func TestApplySyncOptionUnknownID(t *testing.T) {
	f := newServiceFixture(t)

	_, appErr := f.svc.ApplySyncOption(context.Background(), f.eventID, "missing", nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestMoveToUnassignedAdvancesFingerprint(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	g := makeGuest("Alice", guestentity.GroupFamily, 2)
	f.setGuests(g)

	layout := entity.NewLayout()
	layout.Tables = []entity.Table{makeTable("t1", 1, 8)}
	layout.Arrangement["t1"] = []entity.EntityKey{entity.UnifiedKey(g.ID)}
	require.Nil(t, f.repo.SaveLayout(ctx, f.eventID, layout))

	resp, appErr := f.svc.MoveToUnassigned(ctx, f.eventID, []string{g.ID.String()})
	require.Nil(t, appErr)
	assert.Len(t, resp.Unassigned, 1)
	assert.Equal(t, 0, resp.Tables[0].Occupancy)

	_, found, _ := f.syncState.GetFingerprint(ctx, f.eventID)
	assert.True(t, found)
}

func TestClearAllResetsSyncState(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.setGuests(makeGuest("Alice", guestentity.GroupFamily, 2))

	_, appErr := f.svc.AddTable(ctx, f.eventID, &dto.AddTableRequest{Capacity: 8})
	require.Nil(t, appErr)
	require.Nil(t, f.syncState.SetFingerprint(ctx, f.eventID, Snapshot(f.guests.guests[f.eventID])))

	resp, appErr := f.svc.ClearAll(ctx, f.eventID)
	require.Nil(t, appErr)
	assert.Empty(t, resp.Tables)

	_, found, _ := f.syncState.GetFingerprint(ctx, f.eventID)
	assert.False(t, found)
	assert.Empty(t, f.repo.layouts[f.eventID].Tables)
}

func TestGetSyncStatusReportsDrift(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	existing := makeGuest("Alice", guestentity.GroupFamily, 2)
	f.setGuests(existing)

	// First call establishes the baseline and reports no drift
	status, appErr := f.svc.GetSyncStatus(ctx, f.eventID)
	require.Nil(t, appErr)
	assert.False(t, status.SyncRequired)

	arrived := makeGuest("Bob", guestentity.GroupFriends, 3)
	f.setGuests(existing, arrived)

	status, appErr = f.svc.GetSyncStatus(ctx, f.eventID)
	require.Nil(t, appErr)
	assert.True(t, status.SyncRequired)
	assert.Equal(t, 1, status.PendingTriggers)
}
