package service

import (
	"fmt"
	"math"
	"sort"

	"planit-api/core/utils"
	"planit-api/modules/seating/entity"
)

const unknownName = "unknown"

// Reconcile consumes a detected change set and produces either an updated
// layout with its action summary, or candidate sync options when the batch is
// ambiguous enough to need a planner decision. The caller applies the result
// atomically and only then advances the fingerprint, so re-running detection
// against unchanged input yields nothing.
func Reconcile(st *State, changes []entity.Change) *entity.SyncOutcome {
	if len(changes) == 0 {
		return &entity.SyncOutcome{
			HasChanges: false,
			Message:    "Seating is up to date",
		}
	}

	displaced := displacedGuests(st, changes)
	if len(displaced) >= 2 {
		return escalate(st, changes, displaced)
	}

	work := st.Clone()
	actions := applyChanges(work, changes, false)
	actions = append(actions, work.Optimize()...)

	return &entity.SyncOutcome{
		HasChanges: true,
		Layout:     work.Layout,
		Actions:    actions,
		Message:    fmt.Sprintf("Applied %d roster change(s)", len(changes)),
	}
}

// displacedGuests lists guests already seated whom this batch would force to
// another table: party-size growth the current table cannot absorb. Pure
// additions and removals never displace anyone.
func displacedGuests(st *State, changes []entity.Change) []string {
	var names []string
	for _, ch := range changes {
		if ch.Kind != entity.ChangeAttendingCountChange {
			continue
		}
		for _, e := range guestEntities(st, ch) {
			tableID, seated := st.SeatedTable(e.Key)
			if !seated {
				continue
			}
			t := st.Table(tableID)
			// Occupancy already reflects the new size through the index
			if t != nil && st.Occupancy(tableID) > t.Capacity {
				names = append(names, ch.GuestName)
				break
			}
		}
	}
	return names
}

// escalate builds the candidate strategies for an ambiguous batch instead of
// auto-applying one of them.
func escalate(st *State, changes []entity.Change, displaced []string) *entity.SyncOutcome {
	conservative := st.Clone()
	conservativeActions := applyChanges(conservative, changes, true)

	optimal := st.Clone()
	optimalActions := applyChanges(optimal, changes, false)
	optimalActions = append(optimalActions, optimal.Optimize()...)

	options := []entity.SyncOption{
		{
			ID:          utils.GenerateID(),
			Strategy:    entity.StrategyConservative,
			Description: "Keep everyone where they are; guests who no longer fit become unassigned",
			Actions:     conservativeActions,
			Result:      conservative.Layout,
		},
		{
			ID:          utils.GenerateID(),
			Strategy:    entity.StrategyOptimal,
			Description: "Re-seat affected guests and merge under-utilized tables",
			Actions:     optimalActions,
			Result:      optimal.Layout,
		},
	}

	return &entity.SyncOutcome{
		HasChanges:           true,
		RequiresUserDecision: true,
		Options:              options,
		AffectedGuests:       displaced,
		PendingTriggers:      len(changes),
		Message:              fmt.Sprintf("%d guests need to be re-seated; choose how to proceed", len(displaced)),
	}
}

// guestEntities resolves the seating entities a change's guest contributes
// under the current roster and mode.
func guestEntities(st *State, ch entity.Change) []entity.SeatingEntity {
	var entities []entity.SeatingEntity
	for _, p := range []entity.Partition{entity.PartitionUnified, entity.PartitionMale, entity.PartitionFemale} {
		key := entity.EntityKey{GuestID: ch.GuestID, Partition: p}
		if e, ok := st.Index[key]; ok {
			entities = append(entities, e)
		}
	}
	return entities
}

// possibleKeys lists every key form a guest may occupy a table under,
// regardless of current mode; used for removals where the guest may no longer
// resolve through the index at all.
func possibleKeys(ch entity.Change) []entity.EntityKey {
	return []entity.EntityKey{
		entity.UnifiedKey(ch.GuestID),
		{GuestID: ch.GuestID, Partition: entity.PartitionMale},
		{GuestID: ch.GuestID, Partition: entity.PartitionFemale},
	}
}

// applyChanges processes the change set in input order against the working
// state. In conservative mode a seated guest whose table cannot absorb their
// new size is unseated and left unassigned instead of re-placed.
func applyChanges(work *State, changes []entity.Change, conservative bool) []entity.SyncAction {
	var actions []entity.SyncAction

	for _, ch := range changes {
		switch ch.Kind {
		case entity.ChangeNewConfirmed, entity.ChangeBecameConfirmed:
			actions = append(actions, seatArriving(work, ch)...)

		case entity.ChangeNoLongerConfirmed, entity.ChangeGuestRemoved:
			actions = append(actions, removeDeparting(work, ch)...)

		case entity.ChangeAttendingCountChange:
			actions = append(actions, reseatResized(work, ch, conservative)...)
		}
	}

	return actions
}

// seatArriving places a newly confirmed guest's entities via find-or-create
func seatArriving(work *State, ch entity.Change) []entity.SyncAction {
	var actions []entity.SyncAction
	for _, e := range guestEntities(work, ch) {
		if _, seated := work.SeatedTable(e.Key); seated {
			continue // already placed, nothing to do
		}
		tableID, created := findOrCreateTable(work, e)
		if created {
			actions = append(actions, entity.SyncAction{
				Kind:      entity.ActionTableCreated,
				TableName: tableName(work, tableID),
			})
		}
		if appErr := work.Seat(e.Key, tableID); appErr != nil {
			continue
		}
		actions = append(actions, entity.SyncAction{
			Kind:      entity.ActionGuestSeated,
			GuestName: e.DisplayName,
			TableName: tableName(work, tableID),
		})
	}
	return actions
}

// removeDeparting unseats every entity of a guest who left the confirmed
// roster. The prior table's name degrades to "unknown" rather than failing the
// whole reconciliation.
func removeDeparting(work *State, ch entity.Change) []entity.SyncAction {
	var actions []entity.SyncAction
	for _, key := range possibleKeys(ch) {
		tableID, seated := work.SeatedTable(key)
		if !seated {
			continue
		}
		priorName := unknownName
		if t := work.Table(tableID); t != nil {
			priorName = t.Name
		}
		work.Unseat(key)
		actions = append(actions, entity.SyncAction{
			Kind:      entity.ActionGuestRemoved,
			GuestName: ch.GuestName,
			TableName: priorName,
		})
	}
	return actions
}

// reseatResized handles a party-size change: keep the guest in place when the
// table absorbs the new size, otherwise relocate via find-or-create (or leave
// unassigned in conservative mode).
func reseatResized(work *State, ch entity.Change, conservative bool) []entity.SyncAction {
	var actions []entity.SyncAction
	for _, e := range guestEntities(work, ch) {
		tableID, seated := work.SeatedTable(e.Key)
		if !seated {
			// Grew or shrank while unassigned; place like a new arrival
			actions = append(actions, seatArriving(work, entity.Change{
				Kind:      entity.ChangeNewConfirmed,
				GuestID:   ch.GuestID,
				GuestName: ch.GuestName,
			})...)
			break
		}

		t := work.Table(tableID)
		fromName := unknownName
		if t != nil {
			fromName = t.Name
		}

		// Occupancy is computed with the new size already
		if t != nil && work.Occupancy(tableID) <= t.Capacity {
			actions = append(actions, entity.SyncAction{
				Kind:      entity.ActionGuestUpdated,
				GuestName: e.DisplayName,
				TableName: fromName,
				OldCount:  ch.OldCount,
				NewCount:  ch.NewCount,
			})
			continue
		}

		work.Unseat(e.Key)

		if conservative {
			actions = append(actions, entity.SyncAction{
				Kind:      entity.ActionGuestMoved,
				GuestName: e.DisplayName,
				FromTable: fromName,
				ToTable:   "Unassigned",
				OldCount:  ch.OldCount,
				NewCount:  ch.NewCount,
			})
			continue
		}

		destID, created := findOrCreateTable(work, e)
		if created {
			actions = append(actions, entity.SyncAction{
				Kind:      entity.ActionTableCreated,
				TableName: tableName(work, destID),
			})
		}
		if appErr := work.Seat(e.Key, destID); appErr != nil {
			continue
		}
		actions = append(actions, entity.SyncAction{
			Kind:      entity.ActionGuestMoved,
			GuestName: e.DisplayName,
			FromTable: fromName,
			ToTable:   tableName(work, destID),
			OldCount:  ch.OldCount,
			NewCount:  ch.NewCount,
		})
	}
	return actions
}

// findOrCreateTable picks the first table in display-number order that accepts
// the entity and has room; when none fits it synthesizes a table of capacity
// max(8, ceil(size*1.5)).
func findOrCreateTable(work *State, e entity.SeatingEntity) (string, bool) {
	ordered := make([]entity.Table, len(work.Layout.Tables))
	copy(ordered, work.Layout.Tables)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	for _, t := range ordered {
		if t.Accepts(e.Key.Partition) && work.FreeCapacity(t.ID) >= e.Size {
			return t.ID, false
		}
	}

	capacity := int(math.Ceil(float64(e.Size) * 1.5))
	if capacity < 8 {
		capacity = 8
	}

	number := work.nextTableNumber()
	t := entity.Table{
		ID:       utils.GenerateID(),
		Number:   number,
		Name:     fmt.Sprintf("Table %d", number),
		Shape:    entity.TableRound,
		Capacity: capacity,
	}
	work.Layout.Tables = append(work.Layout.Tables, t)
	return t.ID, true
}

func tableName(work *State, tableID string) string {
	if t := work.Table(tableID); t != nil {
		return t.Name
	}
	return unknownName
}
