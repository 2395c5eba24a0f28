package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/partyword/clueroom/internal/game"
)

func addRoutes(r chi.Router, logger *slog.Logger, rooms *game.Registry, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Clueroom API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(rooms))

	// {room} is resolved by roomMiddleware.
	r.Route("/api/{room}", func(r chi.Router) {
		r.Use(roomMiddleware(rooms))

		r.Get("/state", handleState())
		r.Get("/events", handleEvents(broker))
		r.Get("/stream", handleStream(logger, broker))
		r.Get("/qr", handleQR())

		r.Post("/join", handleJoin(broker))
		r.Post("/leave", handleLeave(broker))

		r.Post("/round/start", handleStartRound(broker))
		r.Post("/round/begin-review", handleBeginReview(broker))
		r.Post("/round/reveal", handleReveal(broker))
		r.Post("/round/guess", handleGuess(broker))
		r.Get("/round/word", handleWord())

		r.Post("/hints", handleSubmitHint(broker))
		r.Post("/hints/{hintID}/vote", handleVoteHint(broker))

		r.Post("/chat", handleChat(broker))
		r.Post("/typing", handleTyping(broker))

		r.Post("/settings", handleSettings(broker))
		r.Post("/end-vote", handleEndVote(broker))
		r.Post("/reset", handleReset(broker))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
