package booking

import (
	"iter"
	"time"
)

// HasApprovedConflict reports whether the candidate interval overlaps any
// APPROVED booking in existing. Bookings in other states never conflict: two
// REQUEST bookings for the same days may coexist and the offer owner decides
// which one to approve. Pure; order of existing does not matter.
func HasApprovedConflict(candidate Interval, existing []*Booking) bool {
	for _, b := range existing {
		if b.State != StateApproved {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			return true
		}
	}
	return false
}

// BookedDays yields every calendar day inside window that is covered by one of
// the given bookings, in booking order. Each booking's interval is clamped to
// the window before its days are enumerated. Days covered by more than one
// booking appear once per booking.
func BookedDays(window Interval, bookings []*Booking) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for _, b := range bookings {
			if !b.Interval.Overlaps(window) {
				continue
			}
			for d := range b.Interval.ClampTo(window).Days() {
				if !yield(d) {
					return
				}
			}
		}
	}
}
