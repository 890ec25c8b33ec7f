package service

import (
	"testing"

	"planit-api/modules/seating/entity"

	guestentity "planit-api/modules/guest/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTableNameEmptyTable(t *testing.T) {
	st := newTestState([]entity.Table{makeTable("t1", 3, 8)}, nil)
	assert.Equal(t, "Table 3", st.DeriveTableName("t1"))
}

func TestDeriveTableNameUsesDominantGroup(t *testing.T) {
	family1 := makeGuest("Alice", guestentity.GroupFamily, 2)
	family2 := makeGuest("Bob", guestentity.GroupFamily, 3)
	friend := makeGuest("Carol", guestentity.GroupFriends, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 10)},
		[]guestentity.Guest{family1, family2, friend})

	require.Nil(t, st.Seat(entity.UnifiedKey(friend.ID), "t1"))
	require.Nil(t, st.Seat(entity.UnifiedKey(family1.ID), "t1"))
	require.Nil(t, st.Seat(entity.UnifiedKey(family2.ID), "t1"))

	// Family totals 5 seats against Friends' 2
	assert.Equal(t, "Table 1 - Family", st.Table("t1").Name)
}

func TestDeriveTableNameTieGoesToFirstSeated(t *testing.T) {
	friend := makeGuest("Alice", guestentity.GroupFriends, 2)
	family := makeGuest("Bob", guestentity.GroupFamily, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 10)},
		[]guestentity.Guest{friend, family})

	require.Nil(t, st.Seat(entity.UnifiedKey(friend.ID), "t1"))
	require.Nil(t, st.Seat(entity.UnifiedKey(family.ID), "t1"))

	// Equal totals resolve to the group seated first
	assert.Equal(t, "Table 1 - Friends", st.Table("t1").Name)
}

func TestDeriveTableNameCustomGroupLabel(t *testing.T) {
	g := makeGuest("Dana", guestentity.GroupOther, 2)
	custom := "College Crew"
	g.CustomGroup = &custom
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})

	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	assert.Equal(t, "Table 1 - College Crew", st.Table("t1").Name)
}

func TestRefreshNameSkipsManuallyNamedTables(t *testing.T) {
	g := makeGuest("Eve", guestentity.GroupFamily, 2)
	st := newTestState([]entity.Table{makeTable("t1", 1, 8)}, []guestentity.Guest{g})
	st.Layout.ManualNames["t1"] = true
	st.Table("t1").Name = "Sweetheart Table"

	require.Nil(t, st.Seat(entity.UnifiedKey(g.ID), "t1"))
	assert.Equal(t, "Sweetheart Table", st.Table("t1").Name)
}
