package domain

import (
	"encoding/json"
	"time"
)

const (
	// DefaultGameID is used when a request does not name a session.
	DefaultGameID = "default"

	// DefaultUsername is used when a joining player does not send a name.
	DefaultUsername = "Player"

	// ReadyThreshold is the roster size at which a session becomes playable.
	ReadyThreshold = 2
)

type State string

const (
	StateWaiting State = "waiting"
	StateReady   State = "ready"
)

type Player struct {
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joined_at"`
}

func NewPlayer(userID, username string) Player {
	if username == "" {
		username = DefaultUsername
	}

	return Player{
		UserID:   userID,
		Username: username,
		JoinedAt: time.Now().UTC(),
	}
}

// Session is one game match's shared state: the roster of players that
// joined it, its lifecycle state, and the latest game-state payload
// pushed by either player. The roster is append-only and keeps join
// order. The same userId may appear more than once - duplicate joins
// are not deduplicated.
type Session struct {
	ID         string
	State      State
	Players    []Player
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LastUpdate json.RawMessage
}

func NewSession(id string) Session {
	return Session{
		ID:        id,
		State:     StateWaiting,
		Players:   []Player{},
		CreatedAt: time.Now().UTC(),
	}
}

// Append adds a player to the roster and moves the session to the ready
// state once the roster is large enough. The transition is one-way.
func (s *Session) Append(p Player) {
	s.Players = append(s.Players, p)
	if len(s.Players) >= ReadyThreshold {
		s.State = StateReady
	}
}

// RecordUpdate stores the latest authoritative game-state payload. The
// payload is opaque - its structure and legality are the clients'
// problem.
func (s *Session) RecordUpdate(payload json.RawMessage) {
	s.LastUpdate = payload
	s.UpdatedAt = time.Now().UTC()
}

// LastActivity is the timestamp eviction decisions are based on.
func (s *Session) LastActivity() time.Time {
	if !s.UpdatedAt.IsZero() {
		return s.UpdatedAt
	}
	return s.CreatedAt
}

// Clone returns a copy safe to hand outside the store. The roster slice
// is copied; the update payload is shared but only ever replaced
// wholesale, never mutated in place.
func (s *Session) Clone() Session {
	clone := *s
	clone.Players = make([]Player, len(s.Players))
	copy(clone.Players, s.Players)
	return clone
}
