package game

import (
	"strings"
	"testing"
)

func TestStartRoundRequiresBothRoles(t *testing.T) {
	rm := NewRoom("test", 10)
	guesser := join(t, rm, "Ana", RoleGuesser)

	_, err := rm.StartRound(guesser.ID)
	if err == nil || errKind(t, err) != KindConflict {
		t.Fatalf("start without hint-givers: err = %v, want conflict", err)
	}

	rm = NewRoom("test", 10)
	giver := join(t, rm, "Ben", RoleHint)
	_, err = rm.StartRound(giver.ID)
	if err == nil || errKind(t, err) != KindConflict {
		t.Fatalf("start without guesser: err = %v, want conflict", err)
	}
}

func TestStartRoundRejectsUnknownPlayer(t *testing.T) {
	rm := NewRoom("test", 10)
	join(t, rm, "Ana", RoleGuesser)
	join(t, rm, "Ben", RoleHint)

	_, err := rm.StartRound("ghost")
	if err == nil || errKind(t, err) != KindAuth {
		t.Fatalf("start by unknown player: err = %v, want auth error", err)
	}
}

func TestStartRoundWhileInProgress(t *testing.T) {
	rm, guesser, _ := startCollecting(t, "Ben")

	_, err := rm.StartRound(guesser.ID)
	if err == nil || errKind(t, err) != KindConflict {
		t.Fatalf("double start: err = %v, want conflict", err)
	}
}

func TestRoundNumbersAdvance(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")
	if rm.round.Number != 1 {
		t.Fatalf("first round number = %d, want 1", rm.round.Number)
	}

	playRound(t, rm, guesser, givers, false)

	info, err := rm.StartRound(guesser.ID)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if info.Number != 2 {
		t.Fatalf("second round number = %d, want 2", info.Number)
	}
}

// playRound drives the current round from collecting to round_result.
func playRound(t *testing.T, rm *Room, guesser *Player, givers []*Player, guessRight bool) bool {
	t.Helper()
	toReviewing(t, rm, givers)
	if err := rm.Reveal(givers[0].ID); err != nil {
		t.Fatalf("revealing: %v", err)
	}

	guess := "definitely wrong"
	if guessRight {
		guess = rm.round.Word
	}
	correct, err := rm.SubmitGuess(guesser.ID, guess)
	if err != nil {
		t.Fatalf("guessing: %v", err)
	}
	return correct
}

func TestGuessIsCaseInsensitive(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")
	toReviewing(t, rm, givers)
	if err := rm.Reveal(givers[0].ID); err != nil {
		t.Fatalf("revealing: %v", err)
	}

	correct, err := rm.SubmitGuess(guesser.ID, strings.ToUpper(rm.round.Word))
	if err != nil {
		t.Fatalf("guessing: %v", err)
	}
	if !correct {
		t.Fatalf("uppercased word not accepted")
	}
	if rm.score.Success != 1 || rm.score.Failure != 0 {
		t.Errorf("score = %+v, want one success", rm.score)
	}
}

func TestWrongGuessScoresFailure(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")

	if playRound(t, rm, guesser, givers, false) {
		t.Fatal("wrong guess reported correct")
	}
	if rm.score.Failure != 1 {
		t.Errorf("failure count = %d, want 1", rm.score.Failure)
	}
	if rm.round.Stage != StageResult {
		t.Errorf("stage = %q, want %q", rm.round.Stage, StageResult)
	}
	if rm.progress.RoundsCompleted != 1 {
		t.Errorf("roundsCompleted = %d, want 1", rm.progress.RoundsCompleted)
	}
}

func TestGuessOnlyByGuesser(t *testing.T) {
	rm, _, givers := startCollecting(t, "Ben")
	toReviewing(t, rm, givers)
	if err := rm.Reveal(givers[0].ID); err != nil {
		t.Fatalf("revealing: %v", err)
	}

	_, err := rm.SubmitGuess(givers[0].ID, "anything")
	if err == nil || errKind(t, err) != KindRole {
		t.Fatalf("giver guessing: err = %v, want role error", err)
	}
}

func TestRevealOnlyFromReviewing(t *testing.T) {
	rm, _, givers := startCollecting(t, "Ben")

	err := rm.Reveal(givers[0].ID)
	if err == nil || errKind(t, err) != KindConflict {
		t.Fatalf("reveal during collection: err = %v, want conflict", err)
	}
}

func TestSecretWordGatedByRole(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")

	word, err := rm.SecretWord(givers[0].ID)
	if err != nil {
		t.Fatalf("giver reading word: %v", err)
	}
	if word != rm.round.Word {
		t.Errorf("word = %q, want %q", word, rm.round.Word)
	}

	if _, err := rm.SecretWord(guesser.ID); err == nil || errKind(t, err) != KindRole {
		t.Fatalf("guesser reading word: err = %v, want role error", err)
	}
}

func TestSnapshotHidesWordUntilResult(t *testing.T) {
	rm, guesser, givers := startCollecting(t, "Ben")

	snap := rm.Snapshot()
	if snap.Round == nil {
		t.Fatal("snapshot has no round")
	}
	if snap.Round.Word != "" || snap.Round.WordRevealed {
		t.Fatalf("word leaked before result: %+v", snap.Round)
	}

	playRound(t, rm, guesser, givers, true)

	snap = rm.Snapshot()
	if !snap.Round.WordRevealed || snap.Round.Word == "" {
		t.Fatalf("word missing at result: %+v", snap.Round)
	}
}

func TestGameEndsWhenAllRoundsPlayed(t *testing.T) {
	rm := NewRoom("test", 2)
	guesser := join(t, rm, "Ana", RoleGuesser)
	givers := []*Player{join(t, rm, "Ben", RoleHint)}

	for i := 0; i < 2; i++ {
		if _, err := rm.StartRound(guesser.ID); err != nil {
			t.Fatalf("start %d: %v", i+1, err)
		}
		playRound(t, rm, guesser, givers, true)
	}

	if !rm.progress.GameOver {
		t.Fatal("game not over after final round")
	}
	if rm.progress.GameOverReason != GameOverCompleted {
		t.Errorf("reason = %q, want %q", rm.progress.GameOverReason, GameOverCompleted)
	}
	if _, err := rm.StartRound(guesser.ID); err == nil {
		t.Fatal("start allowed after game over")
	}
}
