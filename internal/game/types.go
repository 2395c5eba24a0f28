package game

import "time"

type Role string

const (
	RoleGuesser Role = "guesser"
	RoleHint    Role = "hint"
)

// Stage is the round's position in its lifecycle. Transitions only ever
// move forward; a nil round is the idle state between rounds.
type Stage string

const (
	StageCollecting    Stage = "collecting_hints"
	StageReviewing     Stage = "reviewing_hints"
	StageAwaitingGuess Stage = "awaiting_guess"
	StageResult        Stage = "round_result"
)

type Difficulty string

const (
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

const (
	defaultTotalRounds = 10
	minTotalRounds     = 1
	maxTotalRounds     = 20
)

type Player struct {
	ID         string
	Name       string
	Role       Role
	Avatar     string
	JoinedAt   time.Time
	LastSeenAt time.Time
}

// Hint is one hint-giver's clue for the current round. Votes holds the
// ids of hint-givers who want it eliminated; Invalid is derived from the
// vote set and the live roster, never stored as independent truth.
type Hint struct {
	ID          string
	PlayerID    string
	Author      string
	Text        string
	Avatar      string
	Votes       map[string]struct{}
	Invalid     bool
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

type Guess struct {
	PlayerID    string
	PlayerName  string
	Avatar      string
	Text        string
	Correct     bool
	SubmittedAt time.Time
}

type ChatMessage struct {
	ID       string
	PlayerID string
	Author   string
	Avatar   string
	Text     string
	SentAt   time.Time
}

type Round struct {
	ID            string
	Word          string
	Stage         Stage
	Number        int
	StartedBy     string
	Hints         []*Hint
	Chat          []ChatMessage
	ReviewLocks   map[string]struct{}
	TypingHints   map[string]struct{}
	GuesserTyping map[string]struct{}
	Guess         *Guess
	StatsApplied  bool
	CreatedAt     time.Time
	RevealedAt    time.Time
	FinishedAt    time.Time
}

type Score struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

const (
	GameOverCompleted = "completed"
	GameOverVotes     = "votes"
)

// Progress tracks rounds played against the configured total plus the
// unanimous end-early vote.
type Progress struct {
	TotalRounds     int
	RoundsCompleted int
	GameOver        bool
	GameOverReason  string
	EndVotes        map[string]struct{}
}

// PlayerStats survives rounds and games for as long as the process does.
type PlayerStats struct {
	PlayerID           string
	Name               string
	Avatar             string
	HintsGiven         int
	HintsKept          int
	HintsEliminated    int
	UsefulnessSum      int
	UsefulnessEntries  int
	RoundsParticipated int
	SuccessfulRounds   int
	BestHints          []BestHint
	LastUpdatedAt      time.Time
}

type BestHint struct {
	Text       string    `json:"text"`
	Word       string    `json:"word"`
	Correct    bool      `json:"correct"`
	Invalid    bool      `json:"invalid"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recordedAt"`
}
