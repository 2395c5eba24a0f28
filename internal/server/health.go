package server

import (
	"net/http"
	"time"

	"github.com/partyword/clueroom/internal/game"
)

type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Rooms         int    `json:"rooms"`
}

// handleHealth reports process liveness. There are no external
// dependencies to ping; all state lives in memory.
func handleHealth(rooms *game.Registry) http.HandlerFunc {
	started := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:        "ok",
			UptimeSeconds: int64(time.Since(started).Seconds()),
			Rooms:         rooms.Len(),
		})
	}
}
