package server

import (
	"net/http"

	"github.com/partyword/clueroom/internal/game"
)

type JoinRequest struct {
	PlayerID string `json:"playerId,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type JoinResponse struct {
	Player PlayerRecord `json:"player"`
}

// PlayerRecord is the caller's own record; the id in it authenticates
// every later action.
type PlayerRecord struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Role   game.Role `json:"role"`
	Avatar string    `json:"avatar"`
}

func handleJoin(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		player, err := room.Join(req.PlayerID, req.Name, game.Role(req.Role), req.Avatar)
		if err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, JoinResponse{Player: PlayerRecord{
			ID:     player.ID,
			Name:   player.Name,
			Role:   player.Role,
			Avatar: player.Avatar,
		}})
	}
}

type LeaveRequest struct {
	PlayerID string `json:"playerId"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// handleLeave also serves unload beacons, so removal is idempotent and
// unknown ids still answer 200.
func handleLeave(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LeaveRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		if err := room.Leave(req.PlayerID); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(room)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
