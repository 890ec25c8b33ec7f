package service

import (
	"testing"

	"planit-api/modules/seating/entity"

	guestentity "planit-api/modules/guest/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeRemovesEmptyTables(t *testing.T) {
	g := makeGuest("Alice", guestentity.GroupFamily, 4)
	st := newTestState([]entity.Table{
		makeTable("t1", 1, 8),
		makeTable("t2", 2, 8),
	}, []guestentity.Guest{g})
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))

	actions := st.Optimize()

	// Empty-table removal is silent
	assert.Empty(t, actions)
	require.Len(t, st.Layout.Tables, 1)
	assert.Equal(t, "t1", st.Layout.Tables[0].ID)
}

func TestOptimizeMergesSparseTable(t *testing.T) {
	big := makeGuest("Alice", guestentity.GroupFamily, 5)
	small := makeGuest("Bob", guestentity.GroupFriends, 2)
	st := newTestState([]entity.Table{
		makeTable("t1", 1, 10),
		makeTable("t2", 2, 10),
	}, []guestentity.Guest{big, small})
	require.Nil(t, st.Seat(entity.UnifiedKey(big.ID), "t1"))
	require.Nil(t, st.Seat(entity.UnifiedKey(small.ID), "t2"))

	// t2 sits at 2/10, a fifth of capacity, and t1 has room for its guests
	actions := st.Optimize()

	require.Len(t, actions, 1)
	assert.Equal(t, entity.ActionArrangementOptimized, actions[0].Kind)
	require.Len(t, st.Layout.Tables, 1)
	assert.Equal(t, 7, st.Occupancy("t1"))

	tableID, seated := st.SeatedTable(entity.UnifiedKey(small.ID))
	assert.True(t, seated)
	assert.Equal(t, "t1", tableID)
}

func TestOptimizeNeverSplitsTableContents(t *testing.T) {
	a := makeGuest("Alice", guestentity.GroupFamily, 2)
	b := makeGuest("Bob", guestentity.GroupFamily, 2)
	seated := makeGuest("Carol", guestentity.GroupFriends, 9)
	st := newTestState([]entity.Table{
		makeTable("t1", 1, 10),
		makeTable("t2", 2, 12),
	}, []guestentity.Guest{a, b, seated})
	require.Nil(t, st.Seat(entity.UnifiedKey(seated.ID), "t1"))
	require.Nil(t, st.Seat(entity.UnifiedKey(a.ID), "t2"))
	require.Nil(t, st.Seat(entity.UnifiedKey(b.ID), "t2"))

	// t2 holds 4/12 but t1 only has 1 free seat; the pair may not be split,
	// so nothing merges.
	actions := st.Optimize()

	assert.Empty(t, actions)
	assert.Len(t, st.Layout.Tables, 2)
	assert.Equal(t, 4, st.Occupancy("t2"))
}

func TestOptimizeLeavesWellFilledTablesAlone(t *testing.T) {
	a := makeGuest("Alice", guestentity.GroupFamily, 4)
	b := makeGuest("Bob", guestentity.GroupFriends, 4)
	st := newTestState([]entity.Table{
		makeTable("t1", 1, 10),
		makeTable("t2", 2, 10),
	}, []guestentity.Guest{a, b})
	require.Nil(t, st.Seat(entity.UnifiedKey(a.ID), "t1"))
	require.Nil(t, st.Seat(entity.UnifiedKey(b.ID), "t2"))

	// 4/10 is above the one-third threshold
	actions := st.Optimize()

	assert.Empty(t, actions)
	assert.Len(t, st.Layout.Tables, 2)
}

func TestOptimizeKeepsLastTable(t *testing.T) {
	g := makeGuest("Alice", guestentity.GroupFamily, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 30)}, []guestentity.Guest{g})
	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))

	actions := st.Optimize()

	assert.Empty(t, actions)
	assert.Len(t, st.Layout.Tables, 1)
}

func TestOptimizeRespectsAffinity(t *testing.T) {
	male := guestentity.Guest{
		ID: uuid.New(), FirstName: "Alice", Group: guestentity.GroupFamily,
		RSVPStatus: guestentity.RSVPConfirmed, MaleCount: 2,
	}
	female := guestentity.Guest{
		ID: uuid.New(), FirstName: "Bob", Group: guestentity.GroupFamily,
		RSVPStatus: guestentity.RSVPConfirmed, FemaleCount: 6,
	}

	layout := entity.NewLayout()
	layout.Preferences.GenderSeparated = true
	femaleTable := makeTable("t1", 1, 12)
	femaleTable.Affinity = entity.AffinityFemale
	maleTable := makeTable("t2", 2, 10)
	maleTable.Affinity = entity.AffinityMale
	layout.Tables = []entity.Table{femaleTable, maleTable}
	st := NewState(layout, []guestentity.Guest{male, female})

	require.Nil(t, st.Seat(entity.EntityKey{GuestID: female.ID, Partition: entity.PartitionFemale}, "t1"))
	require.Nil(t, st.Seat(entity.EntityKey{GuestID: male.ID, Partition: entity.PartitionMale}, "t2"))

	// t2 is sparse (2/10) and t1 has room, but a female-only table cannot
	// absorb a male entity.
	actions := st.Optimize()

	assert.Empty(t, actions)
	assert.Len(t, st.Layout.Tables, 2)
}
