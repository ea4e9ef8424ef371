package promotion

// Persisted status labels. They are free-form and not derived from dates.
const (
	StatusActive    = "ACTIVE"
	StatusExpired   = "EXPIRED"
	StatusScheduled = "SCHEDULED"
	StatusPending   = "PENDING"
)

// DefaultStatusID is assigned on create when the caller names no status.
const DefaultStatusID int64 = 1

type Status struct {
	ID   int64
	Name string
}

// Phase is the date-computed position of a promotion relative to a day.
type Phase string

const (
	PhaseScheduled Phase = "SCHEDULED"
	PhaseActive    Phase = "ACTIVE"
	PhaseExpired   Phase = "EXPIRED"
)

func (p Phase) String() string {
	return string(p)
}
