// Package session implements the login session lifecycle: creation, heartbeat
// refresh, explicit termination, status inquiry, and bulk expiry of inactive
// sessions.
//
// A session is a soft-lifecycle record. It is never deleted; its status moves
// monotonically from Active to exactly one of the terminal states EndedByUser
// or EndedBySystem. Once terminal, no further transition is allowed.
//
// The Manager owns all state transitions and delegates persistence to a Store
// implementation. Each Store call is atomic in isolation; the Manager performs
// no cross-call locking, so a concurrent heartbeat and expiry sweep on the
// same record resolve last-write-wins. Both outcomes leave the record in a
// valid state and are accepted as eventual consistency.
//
// Basic usage:
//
//	mgr := session.NewManager(store, session.WithInactivityThreshold(2*time.Minute))
//
//	sess, err := mgr.Login(ctx, session.LoginParams{
//		Email:     "user@example.com",
//		Nickname:  "user",
//		ClientIP:  "203.0.113.7",
//		ClientMAC: "02:42:ac:11:00:02",
//	})
package session
