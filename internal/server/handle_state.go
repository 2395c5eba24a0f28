package server

import "net/http"

// handleState is the read-only snapshot fetch clients use to bootstrap
// before their event stream is up.
func handleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, roomFrom(r).Snapshot())
	}
}
