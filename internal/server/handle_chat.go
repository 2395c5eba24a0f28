package server

import (
	"net/http"

	"github.com/partyword/clueroom/internal/game"
)

type ChatRequest struct {
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

func handleChat(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		if err := room.PostChat(req.PlayerID, req.Text); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

type TypingRequest struct {
	PlayerID string `json:"playerId"`
	Kind     string `json:"kind"`
	Typing   bool   `json:"typing"`
}

// handleTyping is deliberately quiet: toggles that raced a stage change
// no-op without an error, and unchanged state skips the broadcast.
func handleTyping(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TypingRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		changed, err := room.SetTyping(req.PlayerID, game.TypingKind(req.Kind), req.Typing)
		if err != nil {
			writeGameError(w, err)
			return
		}

		if changed {
			broker.Publish(room)
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
