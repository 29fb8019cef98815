package ephemeris

import "time"

// DateInterval is a span between two absolute instants. End is never
// before Start.
type DateInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds an interval, collapsing it to Start when end < start.
func NewInterval(start, end time.Time) DateInterval {
	if end.Before(start) {
		end = start
	}
	return DateInterval{Start: start, End: end}
}

// EmptyAt is a zero-duration interval anchored at t.
func EmptyAt(t time.Time) DateInterval {
	return DateInterval{Start: t, End: t}
}

func (i DateInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i DateInterval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Contains reports whether t lies in [Start, End).
func (i DateInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Covers reports whether other lies entirely inside i.
func (i DateInterval) Covers(other DateInterval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

func (i DateInterval) Midpoint() time.Time {
	return i.Start.Add(i.Duration() / 2)
}

// In returns the interval with both instants expressed in loc.
func (i DateInterval) In(loc *time.Location) DateInterval {
	return DateInterval{Start: i.Start.In(loc), End: i.End.In(loc)}
}
