package game

import (
	"math"
	"sort"
	"time"
)

const bestHintsKept = 5

// syncStats keeps the durable stats record's display fields in step with
// the player. Callers hold the lock.
func (rm *Room) syncStats(player *Player) {
	stats := rm.statsFor(player.ID, player.Name)
	stats.Name = player.Name
	stats.Avatar = player.Avatar
	stats.LastUpdatedAt = time.Now()
}

func (rm *Room) statsFor(playerID, name string) *PlayerStats {
	stats, ok := rm.stats[playerID]
	if !ok {
		stats = &PlayerStats{
			PlayerID:      playerID,
			Name:          name,
			Avatar:        Avatars[0],
			LastUpdatedAt: time.Now(),
		}
		rm.stats[playerID] = stats
	}
	return stats
}

// finalizeRoundStats folds the finished round into durable stats exactly
// once; the statsApplied flag makes repeat calls no-ops. Callers hold
// the lock.
func (rm *Room) finalizeRoundStats() {
	if rm.round == nil || rm.round.Stage != StageResult || rm.round.StatsApplied {
		return
	}
	rm.applyRoundToStats(rm.round)
	rm.round.StatsApplied = true
}

func (rm *Room) applyRoundToStats(round *Round) {
	guessCorrect := round.Guess != nil && round.Guess.Correct
	finishedAt := round.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	participants := make(map[string]struct{})
	for _, hint := range round.Hints {
		stats := rm.statsFor(hint.PlayerID, hint.Author)
		participants[hint.PlayerID] = struct{}{}

		stats.HintsGiven++
		if hint.Invalid {
			stats.HintsEliminated++
		} else {
			stats.HintsKept++
		}
		stats.Avatar = hint.Avatar

		// Usefulness is a binary sample: the hint survived review and the
		// guess landed.
		usefulness := 0
		if guessCorrect && !hint.Invalid {
			usefulness = 1
		}
		stats.UsefulnessSum += usefulness
		stats.UsefulnessEntries++

		if usefulness > 0 {
			stats.BestHints = append(stats.BestHints, BestHint{
				Text:       hint.Text,
				Word:       round.Word,
				Correct:    guessCorrect,
				Invalid:    hint.Invalid,
				Score:      usefulness,
				RecordedAt: finishedAt,
			})
			sort.SliceStable(stats.BestHints, func(i, j int) bool {
				a, b := stats.BestHints[i], stats.BestHints[j]
				if a.Score != b.Score {
					return a.Score > b.Score
				}
				return a.RecordedAt.After(b.RecordedAt)
			})
			if len(stats.BestHints) > bestHintsKept {
				stats.BestHints = stats.BestHints[:bestHintsKept]
			}
		}
		stats.LastUpdatedAt = finishedAt
	}

	for playerID := range participants {
		stats := rm.statsFor(playerID, "")
		stats.RoundsParticipated++
		if guessCorrect {
			stats.SuccessfulRounds++
		}
		stats.LastUpdatedAt = finishedAt
	}
}

// Metrics are derived percentages, one decimal place.
type Metrics struct {
	CUS         float64 `json:"cus"`
	HSR         float64 `json:"hsr"`
	GAR         float64 `json:"gar"`
	EF          float64 `json:"ef"`
	PlayerScore float64 `json:"playerScore"`
}

func calculateMetrics(stats *PlayerStats) Metrics {
	var cus, hsr, gar float64
	if stats.UsefulnessEntries > 0 {
		cus = float64(stats.UsefulnessSum) / float64(stats.UsefulnessEntries) * 100
	}
	if stats.HintsGiven > 0 {
		hsr = float64(stats.HintsKept) / float64(stats.HintsGiven) * 100
	}
	if stats.RoundsParticipated > 0 {
		gar = float64(stats.SuccessfulRounds) / float64(stats.RoundsParticipated) * 100
	}
	score := 0.5*cus + 0.3*hsr + 0.2*gar

	return Metrics{
		CUS:         round1(cus),
		HSR:         round1(hsr),
		GAR:         round1(gar),
		EF:          round1(100 - hsr),
		PlayerScore: round1(score),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
