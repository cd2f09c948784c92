// Package domain contains core concepts of the meeting system.
// This file defines the Session entity and its invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the connection-scoped record of one connected user.
// It is created and destroyed by the gateway; the registry only reads
// and writes CurrentRoom, and does so under its own lock.
type Session struct {
	ID       uuid.UUID
	Username string

	// CurrentRoom is the name of the room the user is in, or "" when the
	// user is in no room. It must always agree with the registry's member
	// sets: the username is a member of exactly the room named here.
	CurrentRoom string

	ConnectedAt time.Time
}

func NewSession(username string) *Session {
	return &Session{
		ID:          uuid.New(),
		Username:    username,
		ConnectedAt: time.Now().UTC(),
	}
}

// InRoom reports whether the session currently belongs to a room.
func (s *Session) InRoom() bool {
	return s.CurrentRoom != ""
}
