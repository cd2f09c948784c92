package runtime

import (
	"fmt"
	"sync"

	"meet-lab/domain"
	"meet-lab/errors"
)

// Directory is the client directory: the mapping from username to the live
// session record of that connection. It is owned by the gateway, which
// registers a session once the client has identified itself and removes it
// when the connection goes away. The registry only consumes it through
// contract.SessionDirectory and never touches the map itself.
//
// The directory's lock guards the map structure only. The CurrentRoom field
// of a Session is read and written under the Registry's lock.
type Directory struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewDirectory() *Directory {
	return &Directory{sessions: make(map[string]*domain.Session)}
}

// Register adds a session under its username. Username uniqueness among
// connected clients is part of the upstream contract; the directory
// enforces it at the door instead of silently replacing a live session.
func (d *Directory) Register(session *domain.Session) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.sessions[session.Username]; ok {
		return fmt.Errorf("register %q: %w", session.Username, errors.ErrUsernameTaken)
	}
	d.sessions[session.Username] = session
	return nil
}

// Unregister removes the session for username. Unknown usernames are a no-op.
func (d *Directory) Unregister(username string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, username)
}

func (d *Directory) Lookup(username string) (*domain.Session, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	session, ok := d.sessions[username]
	return session, ok
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sessions)
}
