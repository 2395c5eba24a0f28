package server

import (
	"net/http"
)

type playerAction struct {
	PlayerID string `json:"playerId"`
}

func handleStartRound(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerAction
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		info, err := room.StartRound(req.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, info)
	}
}

func handleReveal(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerAction
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		if err := room.Reveal(req.PlayerID); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

type GuessRequest struct {
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

type GuessResponse struct {
	Correct bool `json:"correct"`
}

func handleGuess(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		correct, err := room.SubmitGuess(req.PlayerID, req.Text)
		if err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, GuessResponse{Correct: correct})
	}
}

type WordResponse struct {
	Word string `json:"word"`
}

// handleWord is the hint-giver's mid-round read of the secret; the
// snapshot never carries it before round_result.
func handleWord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := roomFrom(r)
		word, err := room.SecretWord(r.URL.Query().Get("playerId"))
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, WordResponse{Word: word})
	}
}
