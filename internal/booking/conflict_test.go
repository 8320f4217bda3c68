package booking

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedBooking(t *testing.T, from, to time.Time) *Booking {
	t.Helper()
	b, err := NewBooking(from, to, someOfferID, ownerID, requesterID)
	require.NoError(t, err)
	require.NoError(t, b.Approve(ownerID))
	return b
}

func requestedBooking(t *testing.T, from, to time.Time) *Booking {
	t.Helper()
	b, err := NewBooking(from, to, someOfferID, ownerID, requesterID)
	require.NoError(t, err)
	return b
}

func TestHasApprovedConflict(t *testing.T) {
	existing := []*Booking{approvedBooking(t, day(3), day(7))}

	cases := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"overlapping start", day(2), day(5), true},
		{"contained", day(4), day(5), true},
		{"identical", day(3), day(7), true},
		{"overlapping end", day(6), day(9), true},
		{"disjoint after", day(8), day(10), false},
		{"disjoint before", day(1), day(2), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv := mustInterval(t, tc.from, tc.to)
			assert.Equal(t, tc.want, HasApprovedConflict(iv, existing))
		})
	}
}

func TestHasApprovedConflictIgnoresNonApproved(t *testing.T) {
	requested := requestedBooking(t, day(3), day(7))
	canceled := requestedBooking(t, day(3), day(7))
	require.NoError(t, canceled.Cancel(requesterID))

	iv := mustInterval(t, day(3), day(7))
	assert.False(t, HasApprovedConflict(iv, []*Booking{requested, canceled}))
}

func TestHasApprovedConflictEmpty(t *testing.T) {
	iv := mustInterval(t, day(3), day(7))
	assert.False(t, HasApprovedConflict(iv, nil))
}

func TestBookedDaysClampsToWindow(t *testing.T) {
	bookings := []*Booking{approvedBooking(t, day(3), day(9))}
	window := mustInterval(t, day(5), day(7))

	days := slices.Collect(BookedDays(window, bookings))
	require.Len(t, days, 3)
	assert.Equal(t, startOfDay(day(5)), days[0])
	assert.Equal(t, startOfDay(day(7)), days[2])
}

func TestBookedDaysConcatenatesBookings(t *testing.T) {
	bookings := []*Booking{
		approvedBooking(t, day(2), day(4)),
		approvedBooking(t, day(6), day(7)),
	}
	window := mustInterval(t, day(1), day(10))

	days := slices.Collect(BookedDays(window, bookings))
	require.Len(t, days, 5)
	assert.Equal(t, startOfDay(day(2)), days[0])
	assert.Equal(t, startOfDay(day(6)), days[3])
}

func TestBookedDaysPreservesDuplicates(t *testing.T) {
	// Two bookings covering the same day each contribute the day once.
	bookings := []*Booking{
		approvedBooking(t, day(3), day(4)),
		approvedBooking(t, day(4), day(5)),
	}
	window := mustInterval(t, day(1), day(10))

	days := slices.Collect(BookedDays(window, bookings))
	assert.Len(t, days, 4)

	count := 0
	for _, d := range days {
		if d.Equal(startOfDay(day(4))) {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestBookedDaysSkipsDisjointBookings(t *testing.T) {
	bookings := []*Booking{approvedBooking(t, day(8), day(9))}
	window := mustInterval(t, day(1), day(5))

	assert.Empty(t, slices.Collect(BookedDays(window, bookings)))
}
