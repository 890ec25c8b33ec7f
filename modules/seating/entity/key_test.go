package entity

import (
	"testing"

	guestentity "planit-api/modules/guest/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesForGuestUnified(t *testing.T) {
	g := guestentity.Guest{
		ID:             uuid.New(),
		FirstName:      "Alice",
		LastName:       "Smith",
		Group:          guestentity.GroupFamily,
		RSVPStatus:     guestentity.RSVPConfirmed,
		AttendingCount: 4,
	}

	entities := EntitiesForGuest(&g, false)

	require.Len(t, entities, 1)
	assert.Equal(t, UnifiedKey(g.ID), entities[0].Key)
	assert.Equal(t, 4, entities[0].Size)
	assert.Equal(t, "Alice Smith", entities[0].DisplayName)
}

func TestEntitiesForGuestUnconfirmedYieldsNothing(t *testing.T) {
	g := guestentity.Guest{
		ID:             uuid.New(),
		RSVPStatus:     guestentity.RSVPPending,
		AttendingCount: 3,
	}

	assert.Empty(t, EntitiesForGuest(&g, false))
	assert.Empty(t, EntitiesForGuest(&g, true))
}

func TestEntitiesForGuestSeparatedSplitsMixedParty(t *testing.T) {
	g := guestentity.Guest{
		ID:          uuid.New(),
		FirstName:   "Bob",
		RSVPStatus:  guestentity.RSVPConfirmed,
		MaleCount:   2,
		FemaleCount: 3,
	}

	entities := EntitiesForGuest(&g, true)

	require.Len(t, entities, 2)
	assert.Equal(t, PartitionMale, entities[0].Key.Partition)
	assert.Equal(t, 2, entities[0].Size)
	assert.Equal(t, PartitionFemale, entities[1].Key.Partition)
	assert.Equal(t, 3, entities[1].Size)
}

func TestEntitiesForGuestSeparatedSingleGender(t *testing.T) {
	g := guestentity.Guest{
		ID:          uuid.New(),
		RSVPStatus:  guestentity.RSVPConfirmed,
		FemaleCount: 2,
	}

	entities := EntitiesForGuest(&g, true)

	require.Len(t, entities, 1)
	assert.Equal(t, PartitionFemale, entities[0].Key.Partition)
}

func TestEntitiesForGuestSeparatedZeroCountsFallBack(t *testing.T) {
	g := guestentity.Guest{
		ID:         uuid.New(),
		RSVPStatus: guestentity.RSVPConfirmed,
	}

	// A confirmed guest with no recorded split still occupies one seat
	entities := EntitiesForGuest(&g, true)

	require.Len(t, entities, 1)
	assert.Equal(t, 1, entities[0].Size)
}

func TestTableAcceptsPartition(t *testing.T) {
	open := Table{}
	assert.True(t, open.Accepts(PartitionUnified))
	assert.True(t, open.Accepts(PartitionMale))

	maleOnly := Table{Affinity: AffinityMale}
	assert.True(t, maleOnly.Accepts(PartitionMale))
	assert.False(t, maleOnly.Accepts(PartitionFemale))
	assert.False(t, maleOnly.Accepts(PartitionUnified))
}
