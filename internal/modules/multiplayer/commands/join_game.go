package commands

import (
	"context"
	"fmt"

	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/domain"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/store"
)

type JoinGameCommand struct {
	GameID   string `json:"gameId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

func (c JoinGameCommand) Validate() error {
	if c.GameID == "" {
		return fmt.Errorf("invalid GameID - '%s'", c.GameID)
	}

	return nil
}

type JoinGameResponse struct {
	Success bool            `json:"success"`
	GameID  string          `json:"gameId"`
	Players []domain.Player `json:"players"`
	State   domain.State    `json:"state"`
}

type JoinGameCommandHandler struct {
	registry *store.Registry
}

func NewJoinGameCommandHandler(registry *store.Registry) *JoinGameCommandHandler {
	return &JoinGameCommandHandler{registry}
}

func (h *JoinGameCommandHandler) Handle(
	ctx context.Context,
	request JoinGameCommand,
) (JoinGameResponse, error) {
	h.registry.GetOrCreate(request.GameID)

	player := domain.NewPlayer(request.UserID, request.Username)
	session := h.registry.AppendPlayer(request.GameID, player)

	return JoinGameResponse{
		Success: true,
		GameID:  session.ID,
		Players: session.Players,
		State:   session.State,
	}, nil
}
