package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/domain"
)

// Registry is the process-wide session store. The registry mutex only
// guards the map itself; every session carries its own lock, so
// operations against distinct game ids never contend. All four
// accessors return copies - callers never see live store state.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	session domain.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// GetOrCreate returns the session with the given id, creating it in the
// waiting state if it does not exist yet. Concurrent first joins to the
// same id observe a single session with a single creation timestamp.
func (r *Registry) GetOrCreate(id string) domain.Session {
	e := r.getOrCreateEntry(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone()
}

// AppendPlayer adds the player to the session roster and returns the
// post-append view. The roster-size check and the ready transition
// happen under the session lock, so two concurrent joins to an empty
// session cannot both miss the transition. The session is created if
// absent, which also covers a reap racing a join.
func (r *Registry) AppendPlayer(id string, p domain.Player) domain.Session {
	e := r.getOrCreateEntry(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.Append(p)
	return e.session.Clone()
}

// ApplyUpdate stores the payload as the session's latest game state and
// reports whether the session existed. Updates to unknown ids are
// dropped - deliberately, not as an error - and never create a session.
func (r *Registry) ApplyUpdate(id string, payload json.RawMessage) bool {
	e, ok := r.lookup(id)
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.RecordUpdate(payload)
	return true
}

// Get returns a snapshot of the session, or a synthetic empty waiting
// view when the id is unknown. Reads never fail and never create state.
func (r *Registry) Get(id string) domain.Session {
	e, ok := r.lookup(id)
	if !ok {
		return domain.Session{
			ID:      id,
			State:   domain.StateWaiting,
			Players: []domain.Player{},
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone()
}

// Reap removes sessions whose last activity is older than ttl and
// returns how many were removed. A join racing a reap of the same
// session recreates it; the appended roster may be lost, which is the
// same outcome as the join landing just before the reap.
func (r *Registry) Reap(ttl time.Duration) int {
	cutoff := time.Now().UTC().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	reaped := 0
	for id, e := range r.sessions {
		e.mu.Lock()
		idle := e.session.LastActivity().Before(cutoff)
		e.mu.Unlock()

		if idle {
			delete(r.sessions, id)
			reaped++
		}
	}

	return reaped
}

// Count reports the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) lookup(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[id]
	return e, ok
}

func (r *Registry) getOrCreateEntry(id string) *entry {
	if e, ok := r.lookup(id); ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[id]; ok {
		return e
	}

	e := &entry{session: domain.NewSession(id)}
	r.sessions[id] = e
	return e
}
