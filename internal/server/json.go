package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/partyword/clueroom/internal/game"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeGameError maps the engine's error taxonomy onto HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	var gerr *game.Error
	if !errors.As(err, &gerr) {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeError(w, statusFor(gerr.Kind), gerr.Msg)
}

func statusFor(kind game.Kind) int {
	switch kind {
	case game.KindValidation:
		return http.StatusBadRequest
	case game.KindAuth:
		return http.StatusUnauthorized
	case game.KindRole:
		return http.StatusForbidden
	case game.KindConflict:
		return http.StatusConflict
	case game.KindNotFound:
		return http.StatusNotFound
	case game.KindLocked:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
