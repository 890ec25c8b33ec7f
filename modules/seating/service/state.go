package service

import (
	"fmt"

	"planit-api/core/errors"
	"planit-api/core/utils"
	"planit-api/modules/seating/entity"

	guestentity "planit-api/modules/guest/entity"
)

// EntityIndex resolves entity keys to their derived seating view
type EntityIndex map[entity.EntityKey]entity.SeatingEntity

// BuildEntityIndex derives the placeable entities for a roster. Only confirmed
// guests contribute.
func BuildEntityIndex(guests []guestentity.Guest, separated bool) EntityIndex {
	idx := make(EntityIndex)
	for i := range guests {
		for _, e := range entity.EntitiesForGuest(&guests[i], separated) {
			idx[e.Key] = e
		}
	}
	return idx
}

// State is the seating aggregate: the persisted layout plus the entity index
// derived from the current roster. All mutations go through its methods, so the
// exclusivity and capacity invariants hold for every reachable state.
type State struct {
	Layout *entity.Layout
	Index  EntityIndex
}

// NewState wraps a layout and roster into a state aggregate
func NewState(layout *entity.Layout, guests []guestentity.Guest) *State {
	if layout == nil {
		layout = entity.NewLayout()
	}
	if layout.Arrangement == nil {
		layout.Arrangement = map[string][]entity.EntityKey{}
	}
	if layout.ManualNames == nil {
		layout.ManualNames = map[string]bool{}
	}
	return &State{
		Layout: layout,
		Index:  BuildEntityIndex(guests, layout.Preferences.GenderSeparated),
	}
}

// Clone deep-copies the state so candidate reconciliations can be built without
// touching the live layout.
func (s *State) Clone() *State {
	layout := &entity.Layout{
		Tables:         append([]entity.Table{}, s.Layout.Tables...),
		Arrangement:    make(map[string][]entity.EntityKey, len(s.Layout.Arrangement)),
		ManualNames:    make(map[string]bool, len(s.Layout.ManualNames)),
		Preferences:    s.Layout.Preferences,
		LayoutSettings: s.Layout.LayoutSettings,
	}
	for id, keys := range s.Layout.Arrangement {
		layout.Arrangement[id] = append([]entity.EntityKey{}, keys...)
	}
	for id, v := range s.Layout.ManualNames {
		layout.ManualNames[id] = v
	}
	return &State{Layout: layout, Index: s.Index}
}

// EntitySize returns the effective size of a seated key. Keys that no longer
// resolve (the guest left the roster between save and load) count zero; the
// next reconciliation removes them.
func (s *State) EntitySize(key entity.EntityKey) int {
	if e, ok := s.Index[key]; ok {
		return e.Size
	}
	return 0
}

// Table returns the table with the given id, or nil
func (s *State) Table(tableID string) *entity.Table {
	for i := range s.Layout.Tables {
		if s.Layout.Tables[i].ID == tableID {
			return &s.Layout.Tables[i]
		}
	}
	return nil
}

// Occupancy sums the effective sizes of the entities seated at a table
func (s *State) Occupancy(tableID string) int {
	total := 0
	for _, key := range s.Layout.Arrangement[tableID] {
		total += s.EntitySize(key)
	}
	return total
}

// FreeCapacity returns remaining capacity; negative values flag over-capacity
func (s *State) FreeCapacity(tableID string) int {
	t := s.Table(tableID)
	if t == nil {
		return 0
	}
	return t.Capacity - s.Occupancy(tableID)
}

// SeatedTable returns the id of the table holding the key, if any
func (s *State) SeatedTable(key entity.EntityKey) (string, bool) {
	for tableID, keys := range s.Layout.Arrangement {
		for _, k := range keys {
			if k == key {
				return tableID, true
			}
		}
	}
	return "", false
}

// Seat places an entity at a table. It fails with CapacityExceeded when the
// entity does not fit, and with InvalidInput when the table's gender affinity
// rejects the entity's partition. On success the entity is removed from any
// other table first, so a key never appears at two tables.
func (s *State) Seat(key entity.EntityKey, tableID string) *errors.AppError {
	t := s.Table(tableID)
	if t == nil {
		return errors.NewAppError(errors.ErrNotFound, "Table not found", nil)
	}
	if !t.Accepts(key.Partition) {
		return errors.NewAppError(errors.ErrInvalidInput, "Table does not accept this guest partition", nil)
	}

	size := s.EntitySize(key)
	if size == 0 {
		return errors.NewAppError(errors.ErrNotFound, "Guest is not part of the confirmed roster", nil)
	}

	occupancy := s.Occupancy(tableID)
	if current, ok := s.SeatedTable(key); ok && current == tableID {
		// Re-seating at the same table: its own size is already counted
		occupancy -= size
	}
	if occupancy+size > t.Capacity {
		return errors.NewAppError(errors.ErrCapacityExceeded,
			fmt.Sprintf("Table %q cannot fit %d more seats", t.Name, size), nil)
	}

	s.Unseat(key)
	s.Layout.Arrangement[tableID] = append(s.Layout.Arrangement[tableID], key)
	s.refreshName(tableID)
	return nil
}

// Unseat removes an entity from whichever table holds it. It is idempotent:
// unseating an unseated entity is a no-op.
func (s *State) Unseat(key entity.EntityKey) {
	for tableID, keys := range s.Layout.Arrangement {
		for i, k := range keys {
			if k == key {
				s.Layout.Arrangement[tableID] = append(keys[:i], keys[i+1:]...)
				if len(s.Layout.Arrangement[tableID]) == 0 {
					delete(s.Layout.Arrangement, tableID)
				}
				s.refreshName(tableID)
				return
			}
		}
	}
}

// nextTableNumber returns max existing number + 1, so deletions never cause
// display-number collisions.
func (s *State) nextTableNumber() int {
	max := 0
	for i := range s.Layout.Tables {
		if s.Layout.Tables[i].Number > max {
			max = s.Layout.Tables[i].Number
		}
	}
	return max + 1
}

// AddTable creates a table with the next sequential display number
func (s *State) AddTable(shape entity.TableShape, capacity int, posX, posY float64) (*entity.Table, *errors.AppError) {
	if capacity < entity.MinTableCapacity || capacity > entity.MaxTableCapacity {
		return nil, errors.NewAppError(errors.ErrInvalidCapacityRange,
			fmt.Sprintf("Table capacity must be between %d and %d", entity.MinTableCapacity, entity.MaxTableCapacity), nil)
	}
	switch shape {
	case entity.TableRound, entity.TableSquare, entity.TableRectangular:
	default:
		shape = entity.TableRound
	}

	number := s.nextTableNumber()
	t := entity.Table{
		ID:       utils.GenerateID(),
		Number:   number,
		Name:     fmt.Sprintf("Table %d", number),
		Shape:    shape,
		Capacity: capacity,
		PosX:     posX,
		PosY:     posY,
	}
	s.Layout.Tables = append(s.Layout.Tables, t)
	return &s.Layout.Tables[len(s.Layout.Tables)-1], nil
}

// TablePatch carries the editable table fields; nil means unchanged
type TablePatch struct {
	Name     *string
	Shape    *entity.TableShape
	Capacity *int
	PosX     *float64
	PosY     *float64
	Width    *float64
	Height   *float64
	Affinity *entity.GenderAffinity
}

// UpdateTable applies a patch. Capacity may never drop below current occupancy.
// A name change that matches neither the current name nor the derived name
// marks the table as manually named, which the naming engine then skips.
func (s *State) UpdateTable(tableID string, patch TablePatch) *errors.AppError {
	t := s.Table(tableID)
	if t == nil {
		return errors.NewAppError(errors.ErrNotFound, "Table not found", nil)
	}

	if patch.Capacity != nil {
		capacity := *patch.Capacity
		if capacity < entity.MinTableCapacity || capacity > entity.MaxTableCapacity {
			return errors.NewAppError(errors.ErrInvalidCapacityRange,
				fmt.Sprintf("Table capacity must be between %d and %d", entity.MinTableCapacity, entity.MaxTableCapacity), nil)
		}
		if occ := s.Occupancy(tableID); capacity < occ {
			return errors.NewAppError(errors.ErrCapacityTooSmall,
				fmt.Sprintf("Capacity %d is below current occupancy %d", capacity, occ), nil)
		}
		t.Capacity = capacity
	}

	if patch.Name != nil && *patch.Name != t.Name {
		derived := s.DeriveTableName(tableID)
		if *patch.Name == derived {
			delete(s.Layout.ManualNames, tableID)
		} else {
			s.Layout.ManualNames[tableID] = true
		}
		t.Name = *patch.Name
	}

	if patch.Shape != nil {
		t.Shape = *patch.Shape
	}
	if patch.PosX != nil {
		t.PosX = *patch.PosX
	}
	if patch.PosY != nil {
		t.PosY = *patch.PosY
	}
	if patch.Width != nil {
		t.Width = *patch.Width
	}
	if patch.Height != nil {
		t.Height = *patch.Height
	}
	if patch.Affinity != nil {
		t.Affinity = *patch.Affinity
	}
	return nil
}

// DeleteTable removes a table; its guests become unseated
func (s *State) DeleteTable(tableID string) *errors.AppError {
	for i := range s.Layout.Tables {
		if s.Layout.Tables[i].ID == tableID {
			s.Layout.Tables = append(s.Layout.Tables[:i], s.Layout.Tables[i+1:]...)
			delete(s.Layout.Arrangement, tableID)
			delete(s.Layout.ManualNames, tableID)
			return nil
		}
	}
	return errors.NewAppError(errors.ErrNotFound, "Table not found", nil)
}

// ClearAll empties the registry and arrangement and resets manual-name marks.
// The caller also resets the roster fingerprint so the next sync re-baselines.
func (s *State) ClearAll() {
	s.Layout.Tables = []entity.Table{}
	s.Layout.Arrangement = map[string][]entity.EntityKey{}
	s.Layout.ManualNames = map[string]bool{}
}

// SeatedKeys returns every seated entity key across all tables
func (s *State) SeatedKeys() []entity.EntityKey {
	var keys []entity.EntityKey
	for _, t := range s.Layout.Tables {
		keys = append(keys, s.Layout.Arrangement[t.ID]...)
	}
	return keys
}
