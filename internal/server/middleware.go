package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/partyword/clueroom/internal/game"
)

type ctxKey int

const ctxKeyRoom ctxKey = iota

const maxRoomSlugLen = 64

// roomMiddleware resolves the {room} URL parameter to a Room, creating
// it on first use, and stashes it in the request context.
func roomMiddleware(rooms *game.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := chi.URLParam(r, "room")
			if slug == "" || len(slug) > maxRoomSlugLen {
				writeError(w, http.StatusNotFound, "room not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyRoom, rooms.Get(slug))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roomFrom(r *http.Request) *game.Room {
	return r.Context().Value(ctxKeyRoom).(*game.Room)
}
