package runtime

import (
	"fmt"
	"sync"

	"github.com/samber/lo"

	"meet-lab/contract"
	"meet-lab/errors"
)

type Set map[string]struct{}

// Registry is the single source of truth for "who is in which room".
// It keeps two mappings mutually consistent: its own room -> member set
// and the CurrentRoom field of each session in the client directory.
//
// One coarse RWMutex guards the whole registry. Every operation that reads
// then writes either mapping runs as one critical section, so concurrent
// joins and leaves from different client goroutines can never observe a
// room that is non-empty but orphaned, or a member without a matching
// CurrentRoom. Operations do no I/O and never block inside the lock.
//
// A room exists exactly as long as it has members: the last leave deletes
// it atomically. The only exception is a freshly created room that nobody
// has joined yet, which matches the lobby's explicit "create room" flow.
type Registry struct {
	mu        sync.RWMutex
	rooms     map[string]Set
	directory contract.SessionDirectory
}

func NewRegistry(directory contract.SessionDirectory) *Registry {
	return &Registry{
		rooms:     make(map[string]Set),
		directory: directory,
	}
}

// CreateRoom ensures a room with the given name exists. Idempotent: an
// existing room is left untouched. Name syntax is the gateway's problem,
// the registry treats names as opaque strings.
func (r *Registry) CreateRoom(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[name]; !ok {
		r.rooms[name] = make(Set)
	}
}

// JoinRoom puts username into the named room, creating the room on the fly
// if needed, and updates the session's CurrentRoom to match. If the user is
// already in a different room they are moved: the old membership is removed
// (and an emptied room deleted) inside the same critical section, so the
// user is never a member of two rooms at once. Rejoining the current room
// is a no-op.
//
// Returns ErrUnknownSession when username has no registered session; the
// check happens before any mutation, a failed join changes nothing.
func (r *Registry) JoinRoom(username, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.directory.Lookup(username)
	if !ok {
		return fmt.Errorf("join room %q: %w", name, errors.ErrUnknownSession)
	}
	if session.CurrentRoom == name {
		return nil
	}
	if session.CurrentRoom != "" {
		r.removeMember(username, session.CurrentRoom)
	}

	if _, ok := r.rooms[name]; !ok {
		r.rooms[name] = make(Set)
	}
	r.rooms[name][username] = struct{}{}
	session.CurrentRoom = name
	return nil
}

// LeaveRoom takes username out of its current room, deleting the room the
// instant its member set becomes empty. The session's CurrentRoom is always
// cleared, even when it pointed at a room the registry no longer knows,
// which heals any inconsistency instead of propagating it. Leaving while in
// no room only clears the field.
//
// Disconnects must come through here as well, so an abrupt connection loss
// restores the same invariants as an explicit leave.
func (r *Registry) LeaveRoom(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.directory.Lookup(username)
	if !ok {
		return fmt.Errorf("leave room: %w", errors.ErrUnknownSession)
	}
	if session.CurrentRoom != "" {
		r.removeMember(username, session.CurrentRoom)
	}
	session.CurrentRoom = ""
	return nil
}

// removeMember deletes username from the named room's member set and the
// room itself once empty. Caller must hold r.mu.
func (r *Registry) removeMember(username, name string) {
	members, ok := r.rooms[name]
	if !ok {
		return
	}
	delete(members, username)
	if len(members) == 0 {
		delete(r.rooms, name)
	}
}

// UserRoom returns the name of the room username is currently in. The
// second result is false when the user is in no room or has no session;
// absence is data here, not an error.
func (r *Registry) UserRoom(username string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.directory.Lookup(username)
	if !ok || session.CurrentRoom == "" {
		return "", false
	}
	return session.CurrentRoom, true
}

// Rooms returns a snapshot of all current room names, in no particular order.
func (r *Registry) Rooms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.rooms)
}

// Users returns the member usernames of the named room. A room the registry
// does not know yields an empty slice.
func (r *Registry) Users(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.rooms[name])
}

// Counts returns name -> member count for every room in one consistent
// snapshot, so the lobby never pairs a room list from one instant with
// member counts from another.
func (r *Registry) Counts() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, len(r.rooms))
	for name, members := range r.rooms {
		counts[name] = len(members)
	}
	return counts
}
