package promotion

import "time"

// DateOf drops the clock part of t, keeping its calendar day in t's zone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsCurrentlyValid reports whether ref falls in [StartDate, EndDate], both ends inclusive.
func IsCurrentlyValid(p *Promotion, ref time.Time) bool {
	if p == nil {
		return false
	}
	day := DateOf(ref)
	return !day.Before(DateOf(p.StartDate)) && !day.After(DateOf(p.EndDate))
}

// ClassifyActive keeps the promotions that are currently valid on ref, in order.
func ClassifyActive(promotions []*Promotion, ref time.Time) []*Promotion {
	out := make([]*Promotion, 0, len(promotions))
	for _, p := range promotions {
		if IsCurrentlyValid(p, ref) {
			out = append(out, p)
		}
	}
	return out
}

// PhaseOf computes the temporal phase of p on ref.
func PhaseOf(p *Promotion, ref time.Time) Phase {
	day := DateOf(ref)
	switch {
	case day.Before(DateOf(p.StartDate)):
		return PhaseScheduled
	case day.After(DateOf(p.EndDate)):
		return PhaseExpired
	default:
		return PhaseActive
	}
}
