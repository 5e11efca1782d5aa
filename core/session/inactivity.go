package session

import (
	"fmt"
	"time"
)

// Inactivity is an elapsed duration floored to whole seconds and decomposed
// for display.
type Inactivity struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// InactivitySince decomposes now − last into hours, minutes, and seconds.
// A negative interval (clock skew, heartbeat racing the reader) clamps to zero.
func InactivitySince(last, now time.Time) Inactivity {
	total := int64(now.Sub(last) / time.Second)
	if total < 0 {
		total = 0
	}
	return Inactivity{
		Hours:   int(total / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

// String renders the duration in the API's display form, e.g. "1h 1m 1s".
func (i Inactivity) String() string {
	return fmt.Sprintf("%dh %dm %ds", i.Hours, i.Minutes, i.Seconds)
}
