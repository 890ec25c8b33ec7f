package service

import (
	"planit-api/modules/seating/entity"

	guestentity "planit-api/modules/guest/entity"
)

// Snapshot projects a roster into a fingerprint. All statuses are captured so
// a pending guest turning confirmed is distinguishable from a brand-new one;
// only confirmed entries ever drive reconciliation. The fingerprint is taken
// after the first successful load and replaced after every successful sync
// apply or full clear.
func Snapshot(guests []guestentity.Guest) []entity.GuestFingerprint {
	fps := make([]entity.GuestFingerprint, 0, len(guests))
	for i := range guests {
		g := &guests[i]
		fps = append(fps, entity.GuestFingerprint{
			GuestID:        g.ID,
			Status:         g.RSVPStatus,
			AttendingCount: g.AttendingCount,
			MaleCount:      g.MaleCount,
			FemaleCount:    g.FemaleCount,
			FirstName:      g.FirstName,
			LastName:       g.LastName,
			Group:          g.GroupKey(),
		})
	}
	return fps
}

// Diff compares a stored fingerprint against the fresh roster and returns the
// detected changes in roster order. An empty old fingerprint establishes the
// baseline and yields no changes; the first load must never trigger a
// reconciliation.
func Diff(oldFp []entity.GuestFingerprint, guests []guestentity.Guest) []entity.Change {
	if len(oldFp) == 0 {
		return nil
	}

	old := make(map[string]entity.GuestFingerprint, len(oldFp))
	for _, fp := range oldFp {
		old[fp.GuestID.String()] = fp
	}

	var changes []entity.Change
	seen := map[string]bool{}

	for i := range guests {
		g := &guests[i]
		seen[g.ID.String()] = true
		prev, existed := old[g.ID.String()]

		switch {
		case !existed && g.IsConfirmed():
			changes = append(changes, entity.Change{
				Kind:      entity.ChangeNewConfirmed,
				GuestID:   g.ID,
				GuestName: g.FullName(),
				NewCount:  g.AttendingCount,
			})
		case existed && prev.Status != guestentity.RSVPConfirmed && g.IsConfirmed():
			changes = append(changes, entity.Change{
				Kind:      entity.ChangeBecameConfirmed,
				GuestID:   g.ID,
				GuestName: g.FullName(),
				NewCount:  g.AttendingCount,
			})
		case existed && prev.Status == guestentity.RSVPConfirmed && !g.IsConfirmed():
			changes = append(changes, entity.Change{
				Kind:      entity.ChangeNoLongerConfirmed,
				GuestID:   g.ID,
				GuestName: g.FullName(),
				OldCount:  prev.AttendingCount,
			})
		case existed && prev.Status == guestentity.RSVPConfirmed && g.IsConfirmed() &&
			(prev.AttendingCount != g.AttendingCount ||
				prev.MaleCount != g.MaleCount || prev.FemaleCount != g.FemaleCount):
			changes = append(changes, entity.Change{
				Kind:      entity.ChangeAttendingCountChange,
				GuestID:   g.ID,
				GuestName: g.FullName(),
				OldCount:  prev.AttendingCount,
				NewCount:  g.AttendingCount,
			})
		}
	}

	// Confirmed guests present in the old fingerprint but gone from the roster
	for _, fp := range oldFp {
		if fp.Status == guestentity.RSVPConfirmed && !seen[fp.GuestID.String()] {
			changes = append(changes, entity.Change{
				Kind:      entity.ChangeGuestRemoved,
				GuestID:   fp.GuestID,
				GuestName: fp.FirstName + " " + fp.LastName,
				OldCount:  fp.AttendingCount,
			})
		}
	}

	return changes
}
