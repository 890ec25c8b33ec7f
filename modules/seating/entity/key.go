package entity

import (
	"github.com/google/uuid"

	guestentity "planit-api/modules/guest/entity"
)

// Partition identifies which slice of a guest party a seating entity covers.
// Unified is the whole party; Male/Female are the gender halves used when an
// event seats genders separately.
type Partition string

const (
	PartitionUnified Partition = "unified"
	PartitionMale    Partition = "male"
	PartitionFemale  Partition = "female"
)

// EntityKey identifies a seating entity: a guest party, or one gender half of
// it. A mixed-gender party yields two independent keys in separated mode.
type EntityKey struct {
	GuestID   uuid.UUID `json:"guest_id"`
	Partition Partition `json:"partition"`
}

// UnifiedKey returns the key for a whole guest party
func UnifiedKey(guestID uuid.UUID) EntityKey {
	return EntityKey{GuestID: guestID, Partition: PartitionUnified}
}

// SeatingEntity is the derived, placeable view of a guest party (or half of
// one): its key, display fields and effective size.
type SeatingEntity struct {
	Key         EntityKey
	DisplayName string
	GroupKey    string
	GroupLabel  string
	Size        int
}

// EntitiesForGuest derives the seating entities a confirmed guest contributes.
// Unified mode yields one entity sized by AttendingCount. Separated mode yields
// one entity per non-zero gender count, so a mixed party splits in two.
func EntitiesForGuest(g *guestentity.Guest, separated bool) []SeatingEntity {
	if !g.IsConfirmed() {
		return nil
	}

	if !separated {
		size := g.AttendingCount
		if size < 1 {
			size = 1
		}
		return []SeatingEntity{{
			Key:         UnifiedKey(g.ID),
			DisplayName: g.FullName(),
			GroupKey:    g.GroupKey(),
			GroupLabel:  g.GroupLabel(),
			Size:        size,
		}}
	}

	var entities []SeatingEntity
	if g.MaleCount > 0 {
		entities = append(entities, SeatingEntity{
			Key:         EntityKey{GuestID: g.ID, Partition: PartitionMale},
			DisplayName: g.FullName() + " (male)",
			GroupKey:    g.GroupKey(),
			GroupLabel:  g.GroupLabel(),
			Size:        g.MaleCount,
		})
	}
	if g.FemaleCount > 0 {
		entities = append(entities, SeatingEntity{
			Key:         EntityKey{GuestID: g.ID, Partition: PartitionFemale},
			DisplayName: g.FullName() + " (female)",
			GroupKey:    g.GroupKey(),
			GroupLabel:  g.GroupLabel(),
			Size:        g.FemaleCount,
		})
	}
	if len(entities) == 0 {
		// A confirmed guest always has an effective size of at least 1
		entities = append(entities, SeatingEntity{
			Key:         EntityKey{GuestID: g.ID, Partition: PartitionMale},
			DisplayName: g.FullName() + " (male)",
			GroupKey:    g.GroupKey(),
			GroupLabel:  g.GroupLabel(),
			Size:        1,
		})
	}
	return entities
}
