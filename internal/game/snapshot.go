package game

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// Snapshot is the wire-format room state pushed to every observer after
// each mutation. In-memory sets project to sorted slices here; the wire
// shape never feeds back into the authoritative model.
type Snapshot struct {
	Room        string          `json:"room"`
	Players     []PlayerView    `json:"players"`
	Round       *RoundView      `json:"round"`
	Score       Score           `json:"score"`
	Leaderboard LeaderboardView `json:"leaderboard"`
	Progress    ProgressView    `json:"progress"`
	Settings    Settings        `json:"settings"`
	Avatars     []string        `json:"availableAvatars"`
}

type PlayerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Avatar  string `json:"avatar"`
	EndVote bool   `json:"endVote"`
}

type HintView struct {
	ID       string   `json:"id"`
	PlayerID string   `json:"playerId"`
	Author   string   `json:"author"`
	Text     string   `json:"text"`
	Avatar   string   `json:"avatar"`
	Votes    []string `json:"eliminationVotes"`
	Invalid  bool     `json:"invalid"`
}

type GuessView struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Avatar     string `json:"avatar"`
	Text       string `json:"text"`
	Correct    bool   `json:"correct"`
}

type ChatView struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	Author   string    `json:"author"`
	Avatar   string    `json:"avatar"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sentAt"`
}

type RoundView struct {
	ID            string     `json:"id"`
	Stage         Stage      `json:"stage"`
	Number        int        `json:"number"`
	Hints         []HintView `json:"hints"`
	Chat          []ChatView `json:"chatMessages"`
	Guess         *GuessView `json:"guess"`
	Word          string     `json:"word,omitempty"`
	WordRevealed  bool       `json:"wordRevealed"`
	ReviewLocks   []string   `json:"reviewLocks"`
	TypingHints   []string   `json:"typingHints"`
	GuesserTyping []string   `json:"guesserTyping"`
}

type ProgressView struct {
	TotalRounds     int    `json:"totalRounds"`
	RoundsCompleted int    `json:"roundsCompleted"`
	GameOver        bool   `json:"gameOver"`
	GameOverReason  string `json:"gameOverReason,omitempty"`
	EndGameVotes    int    `json:"endGameVotes"`
}

type Totals struct {
	HintsGiven         int `json:"hintsGiven"`
	HintsKept          int `json:"hintsKept"`
	HintsEliminated    int `json:"hintsEliminated"`
	RoundsParticipated int `json:"roundsParticipated"`
	SuccessfulRounds   int `json:"successfulRounds"`
}

type LeaderboardEntry struct {
	PlayerID      string     `json:"playerId"`
	Name          string     `json:"name"`
	Avatar        string     `json:"avatar"`
	Metrics       Metrics    `json:"metrics"`
	Totals        Totals     `json:"totals"`
	PlayerScore   float64    `json:"playerScore"`
	BestHints     []BestHint `json:"bestHints"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
}

type LeaderboardView struct {
	Global    []LeaderboardEntry          `json:"global"`
	Room      []LeaderboardEntry          `json:"room"`
	ByPlayer  map[string]LeaderboardEntry `json:"byPlayer"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

// Snapshot projects the room to its wire format.
func (rm *Room) Snapshot() Snapshot {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	players := make([]PlayerView, 0, len(rm.players))
	for _, p := range rm.players {
		_, voted := rm.progress.EndVotes[p.ID]
		players = append(players, PlayerView{
			ID:      p.ID,
			Name:    p.Name,
			Role:    p.Role,
			Avatar:  p.Avatar,
			EndVote: voted,
		})
	}

	return Snapshot{
		Room:        rm.id,
		Players:     players,
		Round:       rm.roundView(),
		Score:       rm.score,
		Leaderboard: rm.buildLeaderboard(),
		Progress: ProgressView{
			TotalRounds:     rm.progress.TotalRounds,
			RoundsCompleted: rm.progress.RoundsCompleted,
			GameOver:        rm.progress.GameOver,
			GameOverReason:  rm.progress.GameOverReason,
			EndGameVotes:    len(rm.progress.EndVotes),
		},
		Settings: Settings{TotalRounds: rm.progress.TotalRounds, Difficulty: rm.difficulty},
		Avatars:  Avatars,
	}
}

func (rm *Room) roundView() *RoundView {
	round := rm.round
	if round == nil {
		return nil
	}

	hints := make([]HintView, 0, len(round.Hints))
	for _, h := range round.Hints {
		hints = append(hints, HintView{
			ID:       h.ID,
			PlayerID: h.PlayerID,
			Author:   h.Author,
			Text:     h.Text,
			Avatar:   h.Avatar,
			Votes:    sortedKeys(h.Votes),
			Invalid:  h.Invalid,
		})
	}

	chat := make([]ChatView, 0, len(round.Chat))
	for _, m := range round.Chat {
		chat = append(chat, ChatView{
			ID:       m.ID,
			PlayerID: m.PlayerID,
			Author:   m.Author,
			Avatar:   m.Avatar,
			Text:     m.Text,
			SentAt:   m.SentAt,
		})
	}

	view := &RoundView{
		ID:            round.ID,
		Stage:         round.Stage,
		Number:        round.Number,
		Hints:         hints,
		Chat:          chat,
		WordRevealed:  round.Stage == StageResult,
		ReviewLocks:   sortedKeys(round.ReviewLocks),
		TypingHints:   sortedKeys(round.TypingHints),
		GuesserTyping: sortedKeys(round.GuesserTyping),
	}
	// The secret only goes on the wire once the round is decided.
	if view.WordRevealed {
		view.Word = round.Word
	}
	if round.Guess != nil {
		view.Guess = &GuessView{
			PlayerID:   round.Guess.PlayerID,
			PlayerName: round.Guess.PlayerName,
			Avatar:     round.Guess.Avatar,
			Text:       round.Guess.Text,
			Correct:    round.Guess.Correct,
		}
	}
	return view
}

// buildLeaderboard derives ranked views from durable stats. Players who
// never gave a hint stay out of the ranked lists but remain reachable in
// the by-player map. Callers hold the lock.
func (rm *Room) buildLeaderboard() LeaderboardView {
	entries := lo.Map(lo.Values(rm.stats), func(stats *PlayerStats, _ int) LeaderboardEntry {
		metrics := calculateMetrics(stats)
		best := stats.BestHints
		if len(best) > 3 {
			best = best[:3]
		}
		return LeaderboardEntry{
			PlayerID: stats.PlayerID,
			Name:     stats.Name,
			Avatar:   stats.Avatar,
			Metrics:  metrics,
			Totals: Totals{
				HintsGiven:         stats.HintsGiven,
				HintsKept:          stats.HintsKept,
				HintsEliminated:    stats.HintsEliminated,
				RoundsParticipated: stats.RoundsParticipated,
				SuccessfulRounds:   stats.SuccessfulRounds,
			},
			PlayerScore:   metrics.PlayerScore,
			BestHints:     best,
			LastUpdatedAt: stats.LastUpdatedAt,
		}
	})

	ranked := lo.Filter(entries, func(e LeaderboardEntry, _ int) bool {
		return e.Totals.HintsGiven > 0
	})
	sortEntries(ranked)

	givers := rm.hintGiverIDs()
	room := lo.Filter(ranked, func(e LeaderboardEntry, _ int) bool {
		_, ok := givers[e.PlayerID]
		return ok
	})

	byPlayer := lo.SliceToMap(entries, func(e LeaderboardEntry) (string, LeaderboardEntry) {
		return e.PlayerID, e
	})

	return LeaderboardView{
		Global:    ranked,
		Room:      room,
		ByPlayer:  byPlayer,
		UpdatedAt: time.Now(),
	}
}

func sortEntries(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.PlayerScore != b.PlayerScore {
			return a.PlayerScore > b.PlayerScore
		}
		if a.Metrics.CUS != b.Metrics.CUS {
			return a.Metrics.CUS > b.Metrics.CUS
		}
		return a.Name < b.Name
	})
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
