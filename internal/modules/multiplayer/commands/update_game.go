package commands

import (
	"context"
	"encoding/json"

	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/domain"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/store"
)

type UpdateGameCommand struct {
	GameID string          `json:"gameId"`
	State  json.RawMessage `json:"state"`
}

type UpdateGameResponse struct {
	Success bool            `json:"success"`
	Players []domain.Player `json:"players"`
}

type UpdateGameCommandHandler struct {
	registry *store.Registry
}

func NewUpdateGameCommandHandler(registry *store.Registry) *UpdateGameCommandHandler {
	return &UpdateGameCommandHandler{registry}
}

// Handle stores the payload as the session's latest state. An update to
// an unknown game id is dropped without complaint, and the response
// shape does not reveal whether the update was applied - peers find out
// by polling.
func (h *UpdateGameCommandHandler) Handle(
	ctx context.Context,
	request UpdateGameCommand,
) (UpdateGameResponse, error) {
	h.registry.ApplyUpdate(request.GameID, request.State)

	return UpdateGameResponse{
		Success: true,
		Players: h.registry.Get(request.GameID).Players,
	}, nil
}
