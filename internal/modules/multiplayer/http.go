package multiplayer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/mediator-go"

	"github.com/bkovacic/game-sync-go/internal/modules/core"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/commands"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/domain"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/queries"
)

const (
	ActionJoin   = "join"
	ActionUpdate = "update"
)

// actionEnvelope is the body of every mutating request. Which fields
// matter depends on the action; unknown fields are ignored.
type actionEnvelope struct {
	Action   string          `json:"action"`
	GameID   string          `json:"gameId"`
	UserID   string          `json:"userId"`
	Username string          `json:"username"`
	State    json.RawMessage `json:"state"`
}

// HandlePreflight answers CORS preflights without touching the store.
func HandlePreflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-Id, X-Session-Id")
	w.Header().Set("Access-Control-Max-Age", "86400")
	w.WriteHeader(http.StatusOK)
}

// HandleAction dispatches a mutating request by its action field.
// Malformed bodies surface as a 500 carrying the decoder's message,
// matching the protocol's catch-all fault contract.
func HandleAction(w http.ResponseWriter, r *http.Request) {
	envelope, err := core.RequestBody[actionEnvelope](r)
	if err != nil {
		core.WriteInternalServerError(w, r, err)
		return
	}

	switch envelope.Action {
	case ActionJoin:
		handleJoin(w, r, envelope)
	case ActionUpdate:
		handleUpdate(w, r, envelope)
	default:
		core.WriteBadRequest(w, r, fmt.Errorf("unrecognized action '%s'", envelope.Action))
	}
}

func handleJoin(w http.ResponseWriter, r *http.Request, envelope actionEnvelope) {
	command := commands.JoinGameCommand{
		GameID:   envelope.GameID,
		UserID:   envelope.UserID,
		Username: envelope.Username,
	}

	if command.GameID == "" {
		command.GameID = domain.DefaultGameID
	}

	response, err := mediator.Send[commands.JoinGameCommand, commands.JoinGameResponse](
		r.Context(),
		command,
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

func handleUpdate(w http.ResponseWriter, r *http.Request, envelope actionEnvelope) {
	command := commands.UpdateGameCommand{
		GameID: envelope.GameID,
		State:  envelope.State,
	}

	response, err := mediator.Send[commands.UpdateGameCommand, commands.UpdateGameResponse](
		r.Context(),
		command,
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

// HandleGameState serves the poll side of the protocol: the current
// snapshot of a session, defaulting to the shared lobby session when no
// gameId is given.
func HandleGameState(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		gameID = domain.DefaultGameID
	}

	response, err := mediator.Send[queries.GetGameQuery, queries.GameSnapshot](
		r.Context(),
		queries.GetGameQuery{GameID: gameID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}
