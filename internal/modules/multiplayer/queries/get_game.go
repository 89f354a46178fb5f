package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/domain"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/store"
)

type GetGameQuery struct {
	GameID string
}

// GameSnapshot is the read view of a session. Timestamp and payload
// fields are omitted for sessions nobody has joined yet, so an unknown
// game id reads as a bare empty waiting session.
type GameSnapshot struct {
	Players    []domain.Player `json:"players"`
	State      domain.State    `json:"state"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
	LastUpdate json.RawMessage `json:"last_update,omitempty"`
}

type GetGameQueryHandler struct {
	registry *store.Registry
}

func NewGetGameQueryHandler(registry *store.Registry) *GetGameQueryHandler {
	return &GetGameQueryHandler{registry}
}

func (h *GetGameQueryHandler) Handle(
	ctx context.Context,
	request GetGameQuery,
) (GameSnapshot, error) {
	session := h.registry.Get(request.GameID)

	snapshot := GameSnapshot{
		Players:    session.Players,
		State:      session.State,
		LastUpdate: session.LastUpdate,
	}

	if !session.CreatedAt.IsZero() {
		createdAt := session.CreatedAt
		snapshot.CreatedAt = &createdAt
	}

	if !session.UpdatedAt.IsZero() {
		updatedAt := session.UpdatedAt
		snapshot.UpdatedAt = &updatedAt
	}

	return snapshot, nil
}
