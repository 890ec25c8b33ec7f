package service

import (
	"testing"

	"planit-api/core/errors"
	"planit-api/modules/seating/entity"

	guestentity "planit-api/modules/guest/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeGuest(firstName string, group guestentity.GuestGroup, count int) guestentity.Guest {
	return guestentity.Guest{
		ID:             uuid.New(),
		FirstName:      firstName,
		LastName:       "Test",
		Group:          group,
		RSVPStatus:     guestentity.RSVPConfirmed,
		AttendingCount: count,
	}
}

func makeTable(id string, number, capacity int) entity.Table {
	return entity.Table{
		ID:       id,
		Number:   number,
		Name:     "Table 1",
		Shape:    entity.TableRound,
		Capacity: capacity,
	}
}

func newTestState(tables []entity.Table, guests []guestentity.Guest) *State {
	layout := entity.NewLayout()
	layout.Tables = tables
	return NewState(layout, guests)
}

func TestSeatPlacesEntityAtTable(t *testing.T) {
	g := makeGuest("Alice", guestentity.GroupFamily, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})

	appErr := st.Seat(entity.UnifiedKey(g.ID), "t1")
	require.Nil(t, appErr)

	tableID, seated := st.SeatedTable(entity.UnifiedKey(g.ID))
	assert.True(t, seated)
	assert.Equal(t, "t1", tableID)
	assert.Equal(t, 2, st.Occupancy("t1"))
}

func TestSeatMovesEntityBetweenTables(t *testing.T) {
	g := makeGuest("Alice", guestentity.GroupFamily, 2)
	st := newTestState([]entity.Table{
		makeTable("t1", 1, 8),
		makeTable("t2", 2, 8),
	}, []guestentity.Guest{g})

	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t2"))

	// Seating at a second table removes the entity from the first
	tableID, seated := st.SeatedTable(entity.UnifiedKey(g.ID))
	assert.True(t, seated)
	assert.Equal(t, "t2", tableID)
	assert.Equal(t, 0, st.Occupancy("t1"))
	assert.Equal(t, 2, st.Occupancy("t2"))
}

func TestSeatRejectsOverCapacity(t *testing.T) {
	big := makeGuest("Bob", guestentity.GroupFriends, 5)
	small := makeGuest("Carol", guestentity.GroupFriends, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 6)}, []guestentity.Guest{big, small})

	require.Nil(t, st.Seat(entity.UnifiedKey(small.ID), "t1"))

	appErr := st.Seat(entity.UnifiedKey(big.ID), "t1")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCapacityExceeded, appErr.Code)

	// The failed seat left the arrangement untouched
	assert.Equal(t, 2, st.Occupancy("t1"))
	_, seated := st.SeatedTable(entity.UnifiedKey(big.ID))
	assert.False(t, seated)
}

func TestSeatSameTableRecountsOwnSize(t *testing.T) {
	g := makeGuest("Dana", guestentity.GroupWork, 6)
	st := newTestState([]entity.Table{makeTable("t1", 1, 6)}, []guestentity.Guest{g})

	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	// Re-seating at the same table must not double-count the party
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	assert.Equal(t, 6, st.Occupancy("t1"))
}

func TestSeatRejectsAffinityMismatch(t *testing.T) {
	g := guestentity.Guest{
		ID:         uuid.New(),
		FirstName:  "Eve",
		Group:      guestentity.GroupFamily,
		RSVPStatus: guestentity.RSVPConfirmed,
		MaleCount:  2,
	}
	layout := entity.NewLayout()
	layout.Preferences.GenderSeparated = true
	table := makeTable("t1", 1, 8)
	table.Affinity = entity.AffinityFemale
	layout.Tables = []entity.Table{table}
	st := NewState(layout, []guestentity.Guest{g})

	appErr := st.Seat(entity.EntityKey{GuestID: g.ID, Partition: entity.PartitionMale}, "t1")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestSeatUnknownGuest(t *testing.T) {
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, nil)

	appErr := st.Seat(entity.UnifiedKey(uuid.New()), "t1")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUnseatIsIdempotent(t *testing.T) {
	g := makeGuest("Frank", guestentity.GroupOther, 3)
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})

	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	st.Unseat(entity.UnifiedKey(g.ID))
	st.Unseat(entity.UnifiedKey(g.ID))

	assert.Equal(t, 0, st.Occupancy("t1"))
	// Empty arrangement entries are dropped rather than kept as empty slices
	_, ok := st.Layout.Arrangement["t1"]
	assert.False(t, ok)
}

func TestAddTableAssignsSequentialNumbers(t *testing.T) {
	st := newTestState(nil, nil)

	t1, appErr := st.AddTable(entity.TableRound, 8, 0, 0)
	require.Nil(t, appErr)
	t2, appErr := st.AddTable(entity.TableSquare, 8, 0, 0)
	require.Nil(t, appErr)

	assert.Equal(t, 1, t1.Number)
	assert.Equal(t, 2, t2.Number)
	assert.Equal(t, "Table 1", t1.Name)
	assert.Equal(t, "Table 2", t2.Name)

	// Numbers never collide after a deletion
	require.Nil(t, st.DeleteTable(t1.ID))
	t3, appErr := st.AddTable(entity.TableRound, 8, 0, 0)
	require.Nil(t, appErr)
	assert.Equal(t, 3, t3.Number)
}

func TestAddTableRejectsCapacityOutOfRange(t *testing.T) {
	st := newTestState(nil, nil)

	_, appErr := st.AddTable(entity.TableRound, 3, 0, 0)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidCapacityRange, appErr.Code)

	_, appErr = st.AddTable(entity.TableRound, 31, 0, 0)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidCapacityRange, appErr.Code)
}

func TestUpdateTableCapacityBelowOccupancy(t *testing.T) {
	g := makeGuest("Grace", guestentity.GroupFamily, 6)
	st := newTestState([]entity.Table{makeTable("t1", 1, 10)}, []guestentity.Guest{g})
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))

	smaller := 4
	appErr := st.UpdateTable("t1", TablePatch{Capacity: &smaller})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCapacityTooSmall, appErr.Code)

	fits := 6
	assert.Nil(t, st.UpdateTable("t1", TablePatch{Capacity: &fits}))
	assert.Equal(t, 6, st.Table("t1").Capacity)
}

func TestUpdateTableManualNameMarking(t *testing.T) {
	g := makeGuest("Heidi", guestentity.GroupFriends, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	assert.Equal(t, "Table 1 - Friends", st.Table("t1").Name)

	custom := "Head Table"
	require.Nil(t, st.UpdateTable("t1", TablePatch{Name: &custom}))
	assert.True(t, st.Layout.ManualNames["t1"])

	// Subsequent seat changes leave the manual name alone
	st.Unseat(entity.UnifiedKey(g.ID))
	assert.Equal(t, "Head Table", st.Table("t1").Name)

	// Setting the name back to the derived one clears the mark
	derived := st.DeriveTableName("t1")
	require.Nil(t, st.UpdateTable("t1", TablePatch{Name: &derived}))
	assert.False(t, st.Layout.ManualNames["t1"])
}

func TestDeleteTableUnseatsItsGuests(t *testing.T) {
	g := makeGuest("Ivan", guestentity.GroupWork, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))

	require.Nil(t, st.DeleteTable("t1"))

	_, seated := st.SeatedTable(entity.UnifiedKey(g.ID))
	assert.False(t, seated)
	assert.Empty(t, st.Layout.Tables)
}

func TestClearAllResetsLayout(t *testing.T) {
	g := makeGuest("Judy", guestentity.GroupFamily, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	st.Layout.ManualNames["t1"] = true

	st.ClearAll()

	assert.Empty(t, st.Layout.Tables)
	assert.Empty(t, st.Layout.Arrangement)
	assert.Empty(t, st.Layout.ManualNames)
}

func TestCloneIsolatesArrangement(t *testing.T) {
	g := makeGuest("Mallory", guestentity.GroupFamily, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))

	clone := st.Clone()
	clone.Unseat(entity.UnifiedKey(g.ID))

	assert.Equal(t, 2, st.Occupancy("t1"))
	assert.Equal(t, 0, clone.Occupancy("t1"))
}
