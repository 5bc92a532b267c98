package service

import (
	"time"

	"stayeasy/internal/domains/reservation/model"
)

// admits decides whether a stay over [start, end) can be granted next to the
// given reservations. Intervals are half-open: a stay ending on a given day
// releases the room for a stay starting that same day. Reservations that no
// longer hold their nights (cancelled, checked out) never block.
func admits(start, end time.Time, existing []model.Reservation) bool {
	for _, res := range existing {
		if !res.Status.Active() {
			continue
		}

		if res.Overlaps(start, end) {
			return false
		}
	}

	return true
}
