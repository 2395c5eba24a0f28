package game

// Settings is the adjustable rule set reported in every snapshot.
type Settings struct {
	TotalRounds int        `json:"totalRounds"`
	Difficulty  Difficulty `json:"difficulty"`
}

// UpdateSettings changes the round total and/or difficulty, only between
// rounds. A new round total restarts progress tracking: completed
// rounds, game-over state and end votes all reset.
func (rm *Room) UpdateSettings(playerID string, totalRounds *int, difficulty *Difficulty) (Settings, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	if _, aerr := rm.requirePlayer(playerID); aerr != nil {
		return Settings{}, aerr
	}
	if rm.roundInProgress() {
		return Settings{}, newError(KindConflict, "settings are locked during an active round")
	}

	if totalRounds != nil {
		if *totalRounds < minTotalRounds || *totalRounds > maxTotalRounds {
			return Settings{}, newError(KindValidation, "totalRounds must be between %d and %d", minTotalRounds, maxTotalRounds)
		}
		if *totalRounds != rm.progress.TotalRounds {
			rm.progress.TotalRounds = *totalRounds
			rm.progress.RoundsCompleted = 0
			rm.progress.GameOver = false
			rm.progress.GameOverReason = ""
			rm.progress.EndVotes = make(map[string]struct{})
		}
	}
	if difficulty != nil {
		if *difficulty != DifficultyNormal && *difficulty != DifficultyHard {
			return Settings{}, newError(KindValidation, "unknown difficulty %q", *difficulty)
		}
		rm.difficulty = *difficulty
	}

	return Settings{TotalRounds: rm.progress.TotalRounds, Difficulty: rm.difficulty}, nil
}

// ToggleEndVote records or withdraws a vote to end the game early. The
// game ends the moment every connected player has voted.
func (rm *Room) ToggleEndVote(playerID string, vote bool) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return aerr
	}
	if rm.progress.GameOver {
		return newError(KindConflict, "game is already over")
	}

	if vote {
		rm.progress.EndVotes[player.ID] = struct{}{}
	} else {
		delete(rm.progress.EndVotes, player.ID)
	}
	rm.evaluateEndVotes()
	return nil
}

// evaluateEndVotes checks unanimity against the live player count,
// re-run after every vote or roster change. An empty room has no quorum.
// Callers hold the lock.
func (rm *Room) evaluateEndVotes() {
	if rm.progress.GameOver || len(rm.players) == 0 {
		return
	}
	for _, p := range rm.players {
		if _, ok := rm.progress.EndVotes[p.ID]; !ok {
			return
		}
	}
	rm.endGame(GameOverVotes)
}

// endGame is idempotent; ending by vote also clears the active round.
// Callers hold the lock.
func (rm *Room) endGame(reason string) {
	if rm.progress.GameOver {
		return
	}
	rm.progress.GameOver = true
	rm.progress.GameOverReason = reason
	if reason == GameOverVotes {
		rm.round = nil
	}
}

// Reset wipes progress, score and votes and reshuffles the deck. Only
// valid between rounds or after the game ended.
func (rm *Room) Reset(playerID string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	if _, aerr := rm.requirePlayer(playerID); aerr != nil {
		return aerr
	}
	if rm.roundInProgress() && !rm.progress.GameOver {
		return newError(KindConflict, "finish the current round before resetting")
	}

	rm.round = nil
	rm.score = Score{}
	rm.progress.RoundsCompleted = 0
	rm.progress.GameOver = false
	rm.progress.GameOverReason = ""
	rm.progress.EndVotes = make(map[string]struct{})
	rm.deck.reset()
	return nil
}
