package booking

import "time"

// Interval is a half-open time range [Start, End()).
type Interval struct {
	Start       time.Time
	DurationMin int
}

func NewInterval(start time.Time, durationMin int) Interval {
	return Interval{Start: start, DurationMin: durationMin}
}

func (i Interval) End() time.Time {
	return i.Start.Add(time.Duration(i.DurationMin) * time.Minute)
}

// Overlaps reports whether two half-open intervals intersect.
// Intervals that only touch at a boundary (a ends exactly when b starts)
// do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End()) && b.Start.Before(a.End())
}
