package booking

import (
	"time"

	"github.com/google/uuid"
)

// Interval is half-open: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Overlaps reports whether two half-open intervals share any instant. Touching
// endpoints do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Occupancy is a slot as seen by the gates: its window, capacity and current
// reservation count.
type Occupancy struct {
	SlotID   uuid.UUID
	Interval Interval
	Capacity int
	Reserved int
}

func (o Occupancy) HasRoom() bool {
	return HasRoom(o.Reserved, o.Capacity)
}

// FindOverlapping keeps the candidates whose interval overlaps target.
func FindOverlapping(target Interval, candidates []Occupancy) []Occupancy {
	var out []Occupancy
	for _, c := range candidates {
		if c.Interval.Overlaps(target) {
			out = append(out, c)
		}
	}
	return out
}

// FirstFull returns the first overlapping candidate that is at or over
// capacity. Under-capacity overlaps never block.
func FirstFull(target Interval, candidates []Occupancy) (Occupancy, bool) {
	for _, c := range FindOverlapping(target, candidates) {
		if !c.HasRoom() {
			return c, true
		}
	}
	return Occupancy{}, false
}
