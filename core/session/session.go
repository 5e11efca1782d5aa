package session

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one client connection lifetime. All identity fields are
// immutable after creation; only Status and LastAccessed change, and Status
// only moves toward a terminal state.
type Session struct {
	// ID is the opaque unique session identifier, generated at creation.
	ID string `json:"sessionId" bson:"sessionId"`

	Email    string `json:"email" bson:"email"`
	Nickname string `json:"nickname" bson:"nickname"`

	Status Status `json:"status" bson:"status"`

	// Client is the caller's network identity as seen by the transport.
	Client ClientData `json:"clientData" bson:"clientData"`
	// Server is this host's own network identity, resolved at creation.
	Server ServerData `json:"serverData" bson:"serverData"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	// LastAccessed is refreshed by heartbeats and read by the expiry sweep.
	// Invariant: LastAccessed >= CreatedAt.
	LastAccessed time.Time `json:"lastAccessed" bson:"lastAccessed"`
}

// ClientData holds the caller-supplied network identity.
type ClientData struct {
	IP  string `json:"clientIp" bson:"clientIp"`
	MAC string `json:"clientMac" bson:"clientMac"`
}

// ServerData holds the server's resolved network identity.
type ServerData struct {
	IP  string `json:"serverIp" bson:"serverIp"`
	MAC string `json:"serverMac" bson:"serverMac"`
}

// LoginParams contains the caller-supplied fields for creating a session.
type LoginParams struct {
	Email     string
	Nickname  string
	ClientIP  string
	ClientMAC string
}

// New creates an Active session with a freshly generated id and
// CreatedAt == LastAccessed. Required fields are validated by the Manager.
func New(p LoginParams, server ServerData) Session {
	now := time.Now().UTC()
	return Session{
		ID:       uuid.NewString(),
		Email:    p.Email,
		Nickname: p.Nickname,
		Status:   StatusActive,
		Client: ClientData{
			IP:  p.ClientIP,
			MAC: p.ClientMAC,
		},
		Server:       server,
		CreatedAt:    now,
		LastAccessed: now,
	}
}

// Touch refreshes LastAccessed. Terminal sessions cannot be refreshed.
func (s *Session) Touch() error {
	if s.Status.IsTerminal() {
		return ErrAlreadyTerminated
	}
	s.LastAccessed = time.Now().UTC()
	return nil
}

// End transitions the session to a terminal state. Transitions out of a
// terminal state or into a non-terminal state are rejected.
func (s *Session) End(to Status) error {
	if s.Status.IsTerminal() {
		return ErrAlreadyTerminated
	}
	if !to.IsTerminal() {
		return ErrNotTerminal
	}
	s.Status = to
	return nil
}

// Inactivity returns the time elapsed since the last heartbeat.
func (s Session) Inactivity() Inactivity {
	return InactivitySince(s.LastAccessed, time.Now().UTC())
}
