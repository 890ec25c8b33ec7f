package service

import (
	"sort"

	"planit-api/modules/seating/entity"
)

// Optimize runs the post-reconciliation cleanup pass: empty tables are removed
// silently, and a table filled to a third of capacity or less is merged
// wholesale into another table that can absorb all of its guests. Tables are
// considered in ascending display-number order. Contents are never split across
// destinations, so every seated entity stays seated in exactly one table.
// Returns a single arrangement_optimized action when at least one merge
// happened.
func (s *State) Optimize() []entity.SyncAction {
	ordered := make([]entity.Table, len(s.Layout.Tables))
	copy(ordered, s.Layout.Tables)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	merged := false
	for _, t := range ordered {
		if s.Table(t.ID) == nil {
			continue // already removed by an earlier merge
		}

		occ := s.Occupancy(t.ID)
		if occ == 0 {
			s.DeleteTable(t.ID)
			continue
		}

		if occ*3 > t.Capacity || len(s.Layout.Tables) <= 1 {
			continue
		}

		target := s.findMergeTarget(t.ID, occ)
		if target == "" {
			continue
		}

		s.Layout.Arrangement[target] = append(s.Layout.Arrangement[target], s.Layout.Arrangement[t.ID]...)
		delete(s.Layout.Arrangement, t.ID)
		s.refreshName(target)
		s.DeleteTable(t.ID)
		merged = true
	}

	if merged {
		return []entity.SyncAction{{
			Kind:   entity.ActionArrangementOptimized,
			Detail: "Merged under-utilized tables",
		}}
	}
	return nil
}

// findMergeTarget picks the first table, in display-number order, that can hold
// the whole contents of the source table and whose affinity accepts every moved
// entity.
func (s *State) findMergeTarget(sourceID string, occ int) string {
	ordered := make([]entity.Table, len(s.Layout.Tables))
	copy(ordered, s.Layout.Tables)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	for _, candidate := range ordered {
		if candidate.ID == sourceID {
			continue
		}
		if s.FreeCapacity(candidate.ID) < occ {
			continue
		}
		acceptsAll := true
		for _, key := range s.Layout.Arrangement[sourceID] {
			if !candidate.Accepts(key.Partition) {
				acceptsAll = false
				break
			}
		}
		if acceptsAll {
			return candidate.ID
		}
	}
	return ""
}
