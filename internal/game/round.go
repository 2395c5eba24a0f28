package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoundInfo is returned to the caller that started a round.
type RoundInfo struct {
	RoundID string `json:"roundId"`
	Number  int    `json:"number"`
}

// StartRound begins a fresh round: draws the next secret word and resets
// all per-round state. Requires a finished (or absent) previous round,
// an unfinished game, and both roles present.
func (rm *Room) StartRound(playerID string) (RoundInfo, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	if _, aerr := rm.requirePlayer(playerID); aerr != nil {
		return RoundInfo{}, aerr
	}
	if rm.progress.GameOver {
		return RoundInfo{}, newError(KindConflict, "game is over")
	}
	if rm.progress.RoundsCompleted >= rm.progress.TotalRounds {
		return RoundInfo{}, newError(KindConflict, "all rounds have been played")
	}
	if !rm.hasRole(RoleGuesser) {
		return RoundInfo{}, newError(KindConflict, "add a guesser before starting")
	}
	if !rm.hasRole(RoleHint) {
		return RoundInfo{}, newError(KindConflict, "at least one hint-giver is required")
	}
	if rm.roundInProgress() {
		return RoundInfo{}, newError(KindConflict, "finish the current round before starting a new one")
	}

	// A new round voids any end-early votes gathered during the last one.
	rm.progress.EndVotes = make(map[string]struct{})

	rm.round = &Round{
		ID:            uuid.NewString(),
		Word:          rm.deck.draw(),
		Stage:         StageCollecting,
		Number:        rm.progress.RoundsCompleted + 1,
		StartedBy:     playerID,
		ReviewLocks:   make(map[string]struct{}),
		TypingHints:   make(map[string]struct{}),
		GuesserTyping: make(map[string]struct{}),
		CreatedAt:     time.Now(),
	}

	return RoundInfo{RoundID: rm.round.ID, Number: rm.round.Number}, nil
}

// Reveal moves the round from collision review to the guessing stage.
func (rm *Room) Reveal(playerID string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return aerr
	}
	if rm.round == nil || rm.round.Stage != StageReviewing {
		return newError(KindConflict, "cannot reveal clues yet")
	}
	if player.Role != RoleHint {
		return newError(KindRole, "only hint-givers can reveal clues")
	}

	rm.round.Stage = StageAwaitingGuess
	rm.round.RevealedAt = time.Now()
	rm.round.TypingHints = make(map[string]struct{})
	rm.round.GuesserTyping = make(map[string]struct{})
	return nil
}

// SubmitGuess ends the round. Correctness is case-insensitive exact
// equality with the secret word; the result updates the shared score,
// finalizes stats and advances game progress.
func (rm *Room) SubmitGuess(playerID, text string) (bool, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return false, aerr
	}
	if rm.round == nil || rm.round.Stage != StageAwaitingGuess {
		return false, newError(KindConflict, "guesses are not allowed right now")
	}
	if player.Role != RoleGuesser {
		return false, newError(KindRole, "only the guesser can submit guesses")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false, newError(KindValidation, "guess text is required")
	}

	correct := strings.EqualFold(text, rm.round.Word)
	now := time.Now()
	rm.round.Stage = StageResult
	rm.round.Guess = &Guess{
		PlayerID:    player.ID,
		PlayerName:  player.Name,
		Avatar:      player.Avatar,
		Text:        text,
		Correct:     correct,
		SubmittedAt: now,
	}
	rm.round.FinishedAt = now
	rm.round.TypingHints = make(map[string]struct{})
	rm.round.GuesserTyping = make(map[string]struct{})

	if correct {
		rm.score.Success++
	} else {
		rm.score.Failure++
	}
	rm.finalizeRoundStats()

	rm.progress.RoundsCompleted++
	if rm.progress.RoundsCompleted >= rm.progress.TotalRounds {
		rm.endGame(GameOverCompleted)
	}

	return correct, nil
}

// SecretWord lets a hint-giver read the word mid-round; the snapshot
// only carries it once the round reaches round_result.
func (rm *Room) SecretWord(playerID string) (string, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return "", aerr
	}
	if rm.round == nil {
		return "", newError(KindNotFound, "no active round")
	}
	if player.Role != RoleHint {
		return "", newError(KindRole, "only hint-givers can view the word")
	}
	return rm.round.Word, nil
}

// forceFinishRound ends the round with no guess when the sole guesser
// departs mid-round. Callers hold the lock. The spoiled round does not
// count toward the configured total.
func (rm *Room) forceFinishRound() {
	rm.round.Stage = StageResult
	rm.round.Guess = nil
	rm.round.FinishedAt = time.Now()
	rm.round.TypingHints = make(map[string]struct{})
	rm.round.GuesserTyping = make(map[string]struct{})
	rm.finalizeRoundStats()
}
