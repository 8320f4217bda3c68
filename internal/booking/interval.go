package booking

import (
	"iter"
	"time"
)

// Interval is an inclusive [start-of-day, end-of-day] date range in UTC.
// The zero value is not a valid interval; use NewInterval.
type Interval struct {
	From time.Time
	To   time.Time
}

// NewInterval validates and normalizes a date range.
// From is snapped to the start of its calendar day, To to the end of its day.
// It rejects zero bounds, a To before From (compared as given, pre-normalization)
// and a From on a calendar day before today.
func NewInterval(from, to time.Time) (Interval, error) {
	if from.IsZero() || to.IsZero() {
		return Interval{}, ErrInvalidInterval
	}
	if to.Before(from) {
		return Interval{}, ErrInvalidInterval
	}
	if startOfDay(from).Before(startOfDay(time.Now().UTC())) {
		return Interval{}, ErrInvalidInterval
	}

	return Interval{
		From: startOfDay(from),
		To:   endOfDay(to),
	}, nil
}

// Overlaps reports whether the two intervals share at least one calendar day.
// Both endpoints are inclusive.
func (iv Interval) Overlaps(other Interval) bool {
	return !iv.From.After(other.To) && !other.From.After(iv.To)
}

// ClampTo returns the intersection of the two intervals: the later From and
// the earlier To. The result is only meaningful when Overlaps(other) is true.
func (iv Interval) ClampTo(other Interval) Interval {
	out := iv
	if other.From.After(out.From) {
		out.From = other.From
	}
	if other.To.Before(out.To) {
		out.To = other.To
	}
	return out
}

// Days yields every calendar day of the interval in ascending order, one value
// per day, each snapped to the start of its day. The sequence is finite and can
// be ranged over multiple times.
func (iv Interval) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := startOfDay(iv.From); !d.After(iv.To); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
