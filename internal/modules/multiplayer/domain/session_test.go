package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewPlayer_Defaults_Username(t *testing.T) {
	// Act
	player := NewPlayer("u1", "")

	// Assert
	require.Equal(t, "u1", player.UserID)
	require.Equal(t, DefaultUsername, player.Username)
	require.False(t, player.JoinedAt.IsZero())
}

func Test_NewPlayer_Keeps_Provided_Username(t *testing.T) {
	// Act
	player := NewPlayer("u1", "gardener")

	// Assert
	require.Equal(t, "gardener", player.Username)
}

func Test_Session_Append_Transition_Is_One_Way(t *testing.T) {
	// Arrange
	session := NewSession("g1")
	require.Equal(t, StateWaiting, session.State)

	// Act
	session.Append(NewPlayer("u1", ""))
	require.Equal(t, StateWaiting, session.State)

	session.Append(NewPlayer("u2", ""))
	require.Equal(t, StateReady, session.State)

	session.Append(NewPlayer("u3", ""))

	// Assert
	require.Equal(t, StateReady, session.State)
	require.Len(t, session.Players, 3)
}

func Test_Session_RecordUpdate_Sets_Timestamp(t *testing.T) {
	// Arrange
	session := NewSession("g1")
	require.True(t, session.UpdatedAt.IsZero())

	// Act
	session.RecordUpdate(json.RawMessage(`{"wave":3}`))

	// Assert
	require.JSONEq(t, `{"wave":3}`, string(session.LastUpdate))
	require.False(t, session.UpdatedAt.IsZero())
	require.Equal(t, session.UpdatedAt, session.LastActivity())
}

func Test_Session_LastActivity_Falls_Back_To_Creation(t *testing.T) {
	// Arrange
	session := NewSession("g1")

	// Assert
	require.Equal(t, session.CreatedAt, session.LastActivity())
}

func Test_Session_Clone_Detaches_Roster(t *testing.T) {
	// Arrange
	session := NewSession("g1")
	session.Append(NewPlayer("u1", ""))

	// Act
	clone := session.Clone()
	clone.Players[0].UserID = "mutated"

	// Assert
	require.Equal(t, "u1", session.Players[0].UserID)
}
