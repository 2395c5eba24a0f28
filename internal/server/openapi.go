package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/partyword/clueroom/internal/game"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Clueroom API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Room state machine and hint-consensus API for the Clueroom party game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Reports process uptime and the live room count.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHealthz)

	// GET /api/{room}/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/{room}/state")
	getState.SetSummary("Room snapshot")
	getState.SetDescription("Returns the full room snapshot: players, round, score, leaderboard, progress and settings.")
	getState.AddRespStructure(game.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// GET /api/{room}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/{room}/events")
	getEvents.SetSummary("SSE snapshot stream")
	getEvents.SetDescription("Server-Sent Events stream pushing the full room snapshot after every mutation.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/{room}/stream
	getStream, _ := r.NewOperationContext(http.MethodGet, "/api/{room}/stream")
	getStream.SetSummary("WebSocket snapshot stream")
	getStream.SetDescription("Upgrades to a WebSocket pushing the same snapshot frames as the SSE stream.")
	getStream.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getStream)

	// GET /api/{room}/qr
	getQR, _ := r.NewOperationContext(http.MethodGet, "/api/{room}/qr")
	getQR.SetSummary("Room QR code")
	getQR.SetDescription("PNG QR code linking to the room, for joining by phone.")
	getQR.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("image/png"))
	_ = r.AddOperation(getQR)

	// POST /api/{room}/join
	postJoin, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/join")
	postJoin.SetSummary("Join or update a player")
	postJoin.SetDescription("Creates a player, or updates name/role/avatar for a known playerId. Role changes are refused mid-round; only one guesser may exist.")
	postJoin.AddReqStructure(JoinRequest{})
	postJoin.AddRespStructure(JoinResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postJoin)

	// POST /api/{room}/leave
	postLeave, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/leave")
	postLeave.SetSummary("Leave the room")
	postLeave.SetDescription("Idempotent removal; also the unload-beacon target. Strips the player's hints and votes from the active round.")
	postLeave.AddReqStructure(LeaveRequest{})
	postLeave.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLeave)

	// POST /api/{room}/round/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/round/start")
	postStart.SetSummary("Start a round")
	postStart.SetDescription("Draws the next secret word and opens hint collection. Requires a guesser, a hint-giver and an unfinished game.")
	postStart.AddReqStructure(playerAction{})
	postStart.AddRespStructure(game.RoundInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postStart)

	// POST /api/{room}/hints
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/hints")
	postHint.SetSummary("Submit a hint")
	postHint.SetDescription("Records or replaces the caller's hint during collection. Hard difficulty enforces single-word, non-proper-noun clues. Replacing clears prior elimination votes.")
	postHint.AddReqStructure(HintRequest{})
	postHint.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusLocked))
	_ = r.AddOperation(postHint)

	// POST /api/{room}/hints/{hintID}/vote
	postVote, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/hints/{hintID}/vote")
	postVote.SetSummary("Vote to eliminate a hint")
	postVote.SetDescription("Adds or withdraws the caller's elimination vote during review. A hint is invalid only when every current hint-giver has voted against it.")
	postVote.AddReqStructure(VoteRequest{})
	postVote.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postVote.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postVote)

	// POST /api/{room}/round/begin-review
	postReview, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/round/begin-review")
	postReview.SetSummary("Lock hint for review")
	postReview.SetDescription("Marks the caller's hint final. When every hint-giver is locked and submitted, the round advances to collision review.")
	postReview.AddReqStructure(playerAction{})
	postReview.AddRespStructure(game.ReviewStatus{}, openapi.WithHTTPStatus(http.StatusOK))
	postReview.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postReview)

	// POST /api/{room}/round/reveal
	postReveal, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/round/reveal")
	postReveal.SetSummary("Reveal clues")
	postReveal.SetDescription("Ends collision review and hands the round to the guesser.")
	postReveal.AddReqStructure(playerAction{})
	postReveal.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReveal.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postReveal)

	// POST /api/{room}/round/guess
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/round/guess")
	postGuess.SetSummary("Submit the guess")
	postGuess.SetDescription("Guesser only. Case-insensitive match against the secret word; ends the round and updates score, stats and progress.")
	postGuess.AddReqStructure(GuessRequest{})
	postGuess.AddRespStructure(GuessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	_ = r.AddOperation(postGuess)

	// GET /api/{room}/round/word
	getWord, _ := r.NewOperationContext(http.MethodGet, "/api/{room}/round/word")
	getWord.SetSummary("Read the secret word")
	getWord.SetDescription("Hint-givers only, active round required. Pass playerId as a query parameter.")
	getWord.AddRespStructure(WordResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getWord.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	_ = r.AddOperation(getWord)

	// POST /api/{room}/chat
	postChat, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/chat")
	postChat.SetSummary("Post a chat message")
	postChat.SetDescription("Appends a message to the current round's chat log.")
	postChat.AddReqStructure(ChatRequest{})
	postChat.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postChat)

	// POST /api/{room}/typing
	postTyping, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/typing")
	postTyping.SetSummary("Toggle typing indicator")
	postTyping.SetDescription("Kinds: hint (hint-givers during collection) and guess (guesser while guessing). Stale toggles no-op.")
	postTyping.AddReqStructure(TypingRequest{})
	postTyping.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postTyping)

	// POST /api/{room}/settings
	postSettings, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/settings")
	postSettings.SetSummary("Update settings")
	postSettings.SetDescription("Changes total rounds (1-20) and/or difficulty between rounds. A new total restarts progress tracking.")
	postSettings.AddReqStructure(SettingsRequest{})
	postSettings.AddRespStructure(game.Settings{}, openapi.WithHTTPStatus(http.StatusOK))
	postSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postSettings)

	// POST /api/{room}/end-vote
	postEndVote, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/end-vote")
	postEndVote.SetSummary("Vote to end the game early")
	postEndVote.SetDescription("Records or withdraws an end-early vote; a unanimous vote ends the game immediately.")
	postEndVote.AddReqStructure(EndVoteRequest{})
	postEndVote.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postEndVote)

	// POST /api/{room}/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/{room}/reset")
	postReset.SetSummary("Reset the game")
	postReset.SetDescription("Zeroes progress, score and votes and reshuffles the word deck. Valid between rounds or once the game is over.")
	postReset.AddReqStructure(playerAction{})
	postReset.AddRespStructure(SuccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postReset)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
