package service

import "fmt"

// DeriveTableName computes a table's display name from its dominant seated
// group: "Table {number}", with " - {group}" appended when anyone is seated.
// Groups are tallied in seat order and a later group takes the lead only on a
// strictly greater total, so ties resolve to the first-seated group
// deterministically.
func (s *State) DeriveTableName(tableID string) string {
	t := s.Table(tableID)
	if t == nil {
		return ""
	}

	base := fmt.Sprintf("Table %d", t.Number)
	keys := s.Layout.Arrangement[tableID]
	if len(keys) == 0 {
		return base
	}

	totals := map[string]int{}
	labels := map[string]string{}
	var order []string
	for _, key := range keys {
		e, ok := s.Index[key]
		if !ok {
			continue
		}
		if _, seen := totals[e.GroupKey]; !seen {
			order = append(order, e.GroupKey)
			labels[e.GroupKey] = e.GroupLabel
		}
		totals[e.GroupKey] += e.Size
	}
	if len(order) == 0 {
		return base
	}

	dominant := order[0]
	for _, groupKey := range order[1:] {
		if totals[groupKey] > totals[dominant] {
			dominant = groupKey
		}
	}

	return base + " - " + labels[dominant]
}

// refreshName recomputes a table's derived name after a seat/unseat, skipping
// manually named tables entirely.
func (s *State) refreshName(tableID string) {
	if s.Layout.ManualNames[tableID] {
		return
	}
	t := s.Table(tableID)
	if t == nil {
		return
	}
	t.Name = s.DeriveTableName(tableID)
}
