package session

// Status is the lifecycle state of a session. The string form is the
// persisted and wire representation.
type Status string

const (
	// StatusActive is the sole initial state.
	StatusActive Status = "Active"
	// StatusEndedByUser marks an explicit logout. Terminal.
	StatusEndedByUser Status = "EndedByUser"
	// StatusEndedBySystem marks termination by the expiry sweep. Terminal.
	StatusEndedBySystem Status = "EndedBySystem"
)

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == StatusEndedByUser || s == StatusEndedBySystem
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusEndedByUser, StatusEndedBySystem:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
