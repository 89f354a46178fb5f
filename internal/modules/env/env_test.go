package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_GetDuration_Returns_Fallback_When_Unset(t *testing.T) {
	// Act
	val := GetDuration("GAME_SYNC_TEST_UNSET", 30*time.Second)

	// Assert
	require.Equal(t, 30*time.Second, val)
}

func Test_GetDuration_Parses_Set_Value(t *testing.T) {
	// Arrange
	t.Setenv("GAME_SYNC_TEST_TTL", "90s")

	// Act
	val := GetDuration("GAME_SYNC_TEST_TTL", 0)

	// Assert
	require.Equal(t, 90*time.Second, val)
}

func Test_GetDuration_Panics_On_Unparsable_Value(t *testing.T) {
	// Arrange
	t.Setenv("GAME_SYNC_TEST_TTL", "ninety seconds")

	// Assert
	require.Panics(t, func() {
		GetDuration("GAME_SYNC_TEST_TTL", 0)
	})
}

func Test_MustGetInt_Parses_Set_Value(t *testing.T) {
	// Arrange
	t.Setenv("GAME_SYNC_TEST_PORT", "8080")

	// Act
	val := MustGetInt("GAME_SYNC_TEST_PORT")

	// Assert
	require.Equal(t, 8080, val)
}

func Test_MustGetInt_Panics_When_Unset(t *testing.T) {
	// Assert
	require.Panics(t, func() {
		MustGetInt("GAME_SYNC_TEST_UNSET")
	})
}
