package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HintRequest struct {
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

func handleSubmitHint(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HintRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		if err := room.SubmitHint(req.PlayerID, req.Text); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

func handleBeginReview(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerAction
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		status, err := room.BeginReview(req.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		// Repeat locks change nothing, so spare observers the rebroadcast.
		if !status.AlreadyLocked {
			broker.Publish(room)
		}
		writeJSON(w, http.StatusOK, status)
	}
}

type VoteRequest struct {
	PlayerID  string `json:"playerId"`
	Eliminate bool   `json:"eliminate"`
}

func handleVoteHint(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoteRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		if err := room.VoteEliminate(req.PlayerID, chi.URLParam(r, "hintID"), req.Eliminate); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
