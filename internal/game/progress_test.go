package game

import "testing"

func intPtr(v int) *int                { return &v }
func diffPtr(d Difficulty) *Difficulty { return &d }

func TestUpdateSettingsValidatesRange(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)

	for _, total := range []int{0, -1, 21, 100} {
		_, err := rm.UpdateSettings(ana.ID, intPtr(total), nil)
		if err == nil || errKind(t, err) != KindValidation {
			t.Errorf("totalRounds=%d: err = %v, want validation error", total, err)
		}
	}

	settings, err := rm.UpdateSettings(ana.ID, intPtr(5), diffPtr(DifficultyHard))
	if err != nil {
		t.Fatalf("valid update: %v", err)
	}
	if settings.TotalRounds != 5 || settings.Difficulty != DifficultyHard {
		t.Errorf("settings = %+v", settings)
	}
}

func TestUpdateSettingsRejectsUnknownDifficulty(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)

	_, err := rm.UpdateSettings(ana.ID, nil, diffPtr("nightmare"))
	if err == nil || errKind(t, err) != KindValidation {
		t.Fatalf("unknown difficulty: err = %v, want validation error", err)
	}
}

func TestSettingsAndResetRequireKnownPlayer(t *testing.T) {
	rm := NewRoom("test", 10)
	join(t, rm, "Ana", RoleGuesser)

	_, err := rm.UpdateSettings("ghost", intPtr(5), nil)
	if err == nil || errKind(t, err) != KindAuth {
		t.Fatalf("settings by unknown player: err = %v, want auth error", err)
	}
	if rm.progress.TotalRounds != 10 {
		t.Errorf("totalRounds = %d, rejected update applied", rm.progress.TotalRounds)
	}

	if err := rm.Reset("ghost"); err == nil || errKind(t, err) != KindAuth {
		t.Fatalf("reset by unknown player: err = %v, want auth error", err)
	}
}

func TestSettingsLockedMidRound(t *testing.T) {
	rm, guesser, _ := startCollecting(t, "Ben")

	_, err := rm.UpdateSettings(guesser.ID, intPtr(5), nil)
	if err == nil || errKind(t, err) != KindConflict {
		t.Fatalf("settings mid-round: err = %v, want conflict", err)
	}
}

func TestChangingTotalRestartsProgress(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")
	playRound(t, rm, guesser, givers, true)
	if rm.progress.RoundsCompleted != 1 {
		t.Fatalf("roundsCompleted = %d, want 1", rm.progress.RoundsCompleted)
	}

	if _, err := rm.UpdateSettings(guesser.ID, intPtr(15), nil); err != nil {
		t.Fatalf("changing total: %v", err)
	}
	if rm.progress.RoundsCompleted != 0 {
		t.Errorf("roundsCompleted = %d after total change, want 0", rm.progress.RoundsCompleted)
	}

	// Re-sending the same total is a no-op for progress.
	playRound2 := func() {
		if _, err := rm.StartRound(guesser.ID); err != nil {
			t.Fatalf("restart: %v", err)
		}
		playRound(t, rm, guesser, givers, true)
	}
	playRound2()
	if _, err := rm.UpdateSettings(guesser.ID, intPtr(15), nil); err != nil {
		t.Fatalf("same total: %v", err)
	}
	if rm.progress.RoundsCompleted != 1 {
		t.Errorf("same total reset progress: roundsCompleted = %d", rm.progress.RoundsCompleted)
	}
}

func TestEndVoteNeedsUnanimity(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)
	ben := join(t, rm, "Ben", RoleHint)
	cal := join(t, rm, "Cal", RoleHint)

	if err := rm.ToggleEndVote(ana.ID, true); err != nil {
		t.Fatalf("ana voting: %v", err)
	}
	if err := rm.ToggleEndVote(ben.ID, true); err != nil {
		t.Fatalf("ben voting: %v", err)
	}
	if rm.progress.GameOver {
		t.Fatal("game ended at 2 of 3 votes")
	}

	if err := rm.ToggleEndVote(cal.ID, true); err != nil {
		t.Fatalf("cal voting: %v", err)
	}
	if !rm.progress.GameOver {
		t.Fatal("game not over after unanimous vote")
	}
	if rm.progress.GameOverReason != GameOverVotes {
		t.Errorf("reason = %q, want %q", rm.progress.GameOverReason, GameOverVotes)
	}
}

func TestSoloPlayerVoteIsUnanimous(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)

	if err := rm.ToggleEndVote(ana.ID, true); err != nil {
		t.Fatalf("voting: %v", err)
	}
	if !rm.progress.GameOver {
		t.Fatal("one vote of one player did not end the game")
	}
	if rm.progress.GameOverReason != GameOverVotes {
		t.Errorf("reason = %q, want %q", rm.progress.GameOverReason, GameOverVotes)
	}
}

func TestEndVoteWithdrawal(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)
	ben := join(t, rm, "Ben", RoleHint)

	if err := rm.ToggleEndVote(ana.ID, true); err != nil {
		t.Fatalf("voting: %v", err)
	}
	if err := rm.ToggleEndVote(ana.ID, false); err != nil {
		t.Fatalf("withdrawing: %v", err)
	}
	if err := rm.ToggleEndVote(ben.ID, true); err != nil {
		t.Fatalf("ben voting: %v", err)
	}
	if rm.progress.GameOver {
		t.Fatal("withdrawn vote still counted")
	}
}

func TestLeaveCompletesEndVote(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)
	ben := join(t, rm, "Ben", RoleHint)
	cal := join(t, rm, "Cal", RoleHint)

	if err := rm.ToggleEndVote(ana.ID, true); err != nil {
		t.Fatalf("ana voting: %v", err)
	}
	if err := rm.ToggleEndVote(ben.ID, true); err != nil {
		t.Fatalf("ben voting: %v", err)
	}

	// The lone holdout leaving makes the remaining votes unanimous.
	if err := rm.Leave(cal.ID); err != nil {
		t.Fatalf("leaving: %v", err)
	}
	if !rm.progress.GameOver {
		t.Fatal("game not over after holdout left")
	}
}

func TestHoldoutLeavingLeavesSoloVoterUnanimous(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)
	ben := join(t, rm, "Ben", RoleHint)

	if err := rm.ToggleEndVote(ana.ID, true); err != nil {
		t.Fatalf("ana voting: %v", err)
	}
	if rm.progress.GameOver {
		t.Fatal("game ended at 1 of 2 votes")
	}

	if err := rm.Leave(ben.ID); err != nil {
		t.Fatalf("leaving: %v", err)
	}
	if !rm.progress.GameOver {
		t.Fatal("game not over once the remaining roster had all voted")
	}
}

func TestLastPlayerLeavingDoesNotEndGame(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)

	if err := rm.Leave(ana.ID); err != nil {
		t.Fatalf("leaving: %v", err)
	}
	if rm.progress.GameOver {
		t.Fatal("empty room ended the game")
	}
}

func TestEndByVotesClearsRound(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")
	playRound(t, rm, guesser, givers, true)

	if err := rm.ToggleEndVote(guesser.ID, true); err != nil {
		t.Fatalf("voting: %v", err)
	}
	if err := rm.ToggleEndVote(givers[0].ID, true); err != nil {
		t.Fatalf("voting: %v", err)
	}

	if !rm.progress.GameOver {
		t.Fatal("game not over")
	}
	if rm.round != nil {
		t.Error("round survived a vote-driven game end")
	}
}

func TestStartRoundClearsEndVotes(t *testing.T) {
	rm := NewRoom("test", 10)
	ana := join(t, rm, "Ana", RoleGuesser)
	join(t, rm, "Ben", RoleHint)

	if err := rm.ToggleEndVote(ana.ID, true); err != nil {
		t.Fatalf("voting: %v", err)
	}
	if _, err := rm.StartRound(ana.ID); err != nil {
		t.Fatalf("starting: %v", err)
	}
	if len(rm.progress.EndVotes) != 0 {
		t.Errorf("end votes survived a new round: %d", len(rm.progress.EndVotes))
	}
}

func TestResetGuards(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")

	if err := rm.Reset(guesser.ID); err == nil || errKind(t, err) != KindConflict {
		t.Fatalf("reset mid-round: err = %v, want conflict", err)
	}

	playRound(t, rm, guesser, givers, true)
	if err := rm.Reset(guesser.ID); err != nil {
		t.Fatalf("reset between rounds: %v", err)
	}

	if rm.round != nil || rm.score != (Score{}) || rm.progress.RoundsCompleted != 0 {
		t.Errorf("reset incomplete: round=%v score=%+v completed=%d",
			rm.round, rm.score, rm.progress.RoundsCompleted)
	}
	if rm.progress.GameOver {
		t.Error("game over flag survived reset")
	}
}
