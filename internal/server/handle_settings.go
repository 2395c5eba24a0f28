package server

import (
	"net/http"

	"github.com/partyword/clueroom/internal/game"
)

type SettingsRequest struct {
	PlayerID    string  `json:"playerId"`
	TotalRounds *int    `json:"totalRounds,omitempty"`
	Difficulty  *string `json:"difficulty,omitempty"`
}

func handleSettings(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SettingsRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var difficulty *game.Difficulty
		if req.Difficulty != nil {
			d := game.Difficulty(*req.Difficulty)
			difficulty = &d
		}

		room := roomFrom(r)
		settings, err := room.UpdateSettings(req.PlayerID, req.TotalRounds, difficulty)
		if err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, settings)
	}
}

type EndVoteRequest struct {
	PlayerID string `json:"playerId"`
	Vote     bool   `json:"vote"`
}

func handleEndVote(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EndVoteRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		if err := room.ToggleEndVote(req.PlayerID, req.Vote); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

func handleReset(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerAction
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		if err := room.Reset(req.PlayerID); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
