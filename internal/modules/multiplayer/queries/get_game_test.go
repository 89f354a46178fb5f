package queries

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/domain"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_GetGameQuery_Unknown_Session_Reads_As_Empty_Waiting(t *testing.T) {
	// Arrange
	registry := store.NewRegistry()
	handler := NewGetGameQueryHandler(registry)

	// Act
	snapshot, err := handler.Handle(context.Background(), GetGameQuery{GameID: "ghost"})

	// Assert
	require.NoError(t, err)
	require.Equal(t, domain.StateWaiting, snapshot.State)
	require.Empty(t, snapshot.Players)
	require.Nil(t, snapshot.CreatedAt)
	require.Nil(t, snapshot.UpdatedAt)
	require.Nil(t, snapshot.LastUpdate)
}

func Test_GetGameQuery_Returns_Roster_And_Latest_Update(t *testing.T) {
	// Arrange
	registry := store.NewRegistry()
	handler := NewGetGameQueryHandler(registry)

	gameID := uuid.NewString()
	registry.AppendPlayer(gameID, domain.NewPlayer("u1", ""))
	registry.AppendPlayer(gameID, domain.NewPlayer("u2", ""))
	registry.ApplyUpdate(gameID, json.RawMessage(`{"score":5}`))

	// Act
	snapshot, err := handler.Handle(context.Background(), GetGameQuery{GameID: gameID})

	// Assert
	require.NoError(t, err)
	require.Equal(t, domain.StateReady, snapshot.State)
	require.Len(t, snapshot.Players, 2)
	require.NotNil(t, snapshot.CreatedAt)
	require.NotNil(t, snapshot.UpdatedAt)
	require.JSONEq(t, `{"score":5}`, string(snapshot.LastUpdate))
}

func Test_GetGameQuery_Snapshot_Omits_Empty_Fields_On_The_Wire(t *testing.T) {
	// Arrange
	registry := store.NewRegistry()
	handler := NewGetGameQueryHandler(registry)

	snapshot, err := handler.Handle(context.Background(), GetGameQuery{GameID: "ghost"})
	require.NoError(t, err)

	// Act
	payload, err := json.Marshal(snapshot)

	// Assert
	require.NoError(t, err)
	require.JSONEq(t, `{"players":[],"state":"waiting"}`, string(payload))
}
