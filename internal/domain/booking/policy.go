package booking

import "time"

const (
	DefaultOverlapWindow = 6 * time.Hour
	DefaultDuration      = 30 * time.Minute
	DefaultCapacity      = 1
)

// Policy holds the tunables of the admission rules.
type Policy struct {
	// Candidate slots must start within ±OverlapWindow of the requested start.
	OverlapWindow time.Duration
	// Used when neither the slot nor its service has a duration.
	DefaultDuration time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		OverlapWindow:   DefaultOverlapWindow,
		DefaultDuration: DefaultDuration,
	}
}

// Normalized fills zero fields with the defaults.
func (p Policy) Normalized() Policy {
	if p.OverlapWindow <= 0 {
		p.OverlapWindow = DefaultOverlapWindow
	}
	if p.DefaultDuration <= 0 {
		p.DefaultDuration = DefaultDuration
	}
	return p
}

// CandidateWindow bounds the overlap search around start.
func (p Policy) CandidateWindow(start time.Time) (from, to time.Time) {
	return start.Add(-p.OverlapWindow), start.Add(p.OverlapWindow)
}

// SlotDuration resolves slot minutes, then service minutes, then the default.
func (p Policy) SlotDuration(slotMin, serviceMin int) time.Duration {
	if slotMin > 0 {
		return time.Duration(slotMin) * time.Minute
	}
	if serviceMin > 0 {
		return time.Duration(serviceMin) * time.Minute
	}
	return p.DefaultDuration
}
