package game

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Room owns every piece of mutable state for one game room: the player
// roster, the active round, cumulative score, word deck, game progress
// and durable player stats. All operations take the room mutex for their
// full duration and re-validate stage/role/lock state under it, so each
// action sees the latest state and either applies atomically or fails
// with no change.
type Room struct {
	mu sync.Mutex

	id         string
	players    []*Player
	round      *Round
	score      Score
	deck       *deck
	progress   Progress
	difficulty Difficulty
	stats      map[string]*PlayerStats
	lastActive time.Time
}

// NewRoom creates an empty room with the given default round total.
func NewRoom(id string, totalRounds int) *Room {
	if totalRounds < minTotalRounds || totalRounds > maxTotalRounds {
		totalRounds = defaultTotalRounds
	}
	return &Room{
		id:         id,
		deck:       newDeck(defaultWords),
		difficulty: DifficultyNormal,
		progress:   Progress{TotalRounds: totalRounds, EndVotes: make(map[string]struct{})},
		stats:      make(map[string]*PlayerStats),
		lastActive: time.Now(),
	}
}

func (rm *Room) ID() string { return rm.id }

// LastActive reports when the room last processed an action; the
// registry reaper uses it to drop idle rooms.
func (rm *Room) LastActive() time.Time {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.lastActive
}

func (rm *Room) touch() {
	rm.lastActive = time.Now()
}

func (rm *Room) findPlayer(id string) *Player {
	for _, p := range rm.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// requirePlayer resolves the caller or fails with an auth error, and
// bumps their last-seen timestamp.
func (rm *Room) requirePlayer(id string) (*Player, *Error) {
	p := rm.findPlayer(id)
	if p == nil {
		return nil, newError(KindAuth, "unknown player")
	}
	p.LastSeenAt = time.Now()
	return p, nil
}

func (rm *Room) guesserTaken(ignoreID string) bool {
	for _, p := range rm.players {
		if p.Role == RoleGuesser && p.ID != ignoreID {
			return true
		}
	}
	return false
}

func (rm *Room) hasRole(role Role) bool {
	for _, p := range rm.players {
		if p.Role == role {
			return true
		}
	}
	return false
}

// hintGiverIDs is the live roster consensus is evaluated against.
func (rm *Room) hintGiverIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, p := range rm.players {
		if p.Role == RoleHint {
			ids[p.ID] = struct{}{}
		}
	}
	return ids
}

// roundInProgress reports whether a round is in a non-terminal stage.
// A round at round_result stays visible until the next start overwrites
// it, but no longer counts as in progress.
func (rm *Room) roundInProgress() bool {
	return rm.round != nil && rm.round.Stage != StageResult
}

// PostChat appends a message to the round's chat log. Any role may chat
// while a round object exists, including during the result review
// window.
func (rm *Room) PostChat(playerID, text string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return aerr
	}
	if rm.round == nil {
		return newError(KindConflict, "no round to chat in")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return newError(KindValidation, "message text is required")
	}

	rm.round.Chat = append(rm.round.Chat, ChatMessage{
		ID:       uuid.NewString(),
		PlayerID: player.ID,
		Author:   player.Name,
		Avatar:   player.Avatar,
		Text:     text,
		SentAt:   time.Now(),
	})
	return nil
}

// TypingKind selects which typing indicator a client is toggling.
type TypingKind string

const (
	TypingHint  TypingKind = "hint"
	TypingGuess TypingKind = "guess"
)

// SetTyping toggles the caller's typing indicator. Stale toggles (the
// stage moved on) are not errors; they report no change so the caller
// can skip the broadcast.
func (rm *Room) SetTyping(playerID string, kind TypingKind, typing bool) (bool, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return false, aerr
	}
	if kind != TypingHint && kind != TypingGuess {
		return false, newError(KindValidation, "unknown typing kind %q", kind)
	}
	if rm.round == nil {
		return false, nil
	}

	var set map[string]struct{}
	switch kind {
	case TypingHint:
		if player.Role != RoleHint || rm.round.Stage != StageCollecting {
			return false, nil
		}
		set = rm.round.TypingHints
	case TypingGuess:
		if player.Role != RoleGuesser || rm.round.Stage != StageAwaitingGuess {
			return false, nil
		}
		set = rm.round.GuesserTyping
	}

	if typing {
		if _, ok := set[player.ID]; ok {
			return false, nil
		}
		set[player.ID] = struct{}{}
		return true, nil
	}
	if _, ok := set[player.ID]; !ok {
		return false, nil
	}
	delete(set, player.ID)
	return true, nil
}
