package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Join creates a player on first contact or updates the record for a
// known id (rejoin, rename, role change, avatar change). At most one
// player holds the guesser role; role changes are refused while a round
// is in a non-terminal stage.
func (rm *Room) Join(playerID, name string, role Role, avatar string) (*Player, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newError(KindValidation, "name is required")
	}
	if role != RoleGuesser {
		role = RoleHint
	}
	avatar = normalizeAvatar(avatar)
	now := time.Now()

	player := rm.findPlayer(playerID)
	if player != nil {
		if role != player.Role && rm.roundInProgress() {
			return nil, newError(KindConflict, "roles are locked during an active round")
		}
		if role == RoleGuesser && rm.guesserTaken(player.ID) {
			return nil, newError(KindConflict, "another guesser is already active")
		}
		player.Name = name
		player.Role = role
		player.Avatar = avatar
		player.LastSeenAt = now
	} else {
		if role == RoleGuesser && rm.guesserTaken("") {
			return nil, newError(KindConflict, "another guesser is already active")
		}
		player = &Player{
			ID:         uuid.NewString(),
			Name:       name,
			Role:       role,
			Avatar:     avatar,
			JoinedAt:   now,
			LastSeenAt: now,
		}
		rm.players = append(rm.players, player)
	}

	rm.applyAvatarToHints(player.ID, player.Avatar)
	// Role or identity changed, so any standing end-game vote is stale.
	delete(rm.progress.EndVotes, player.ID)
	rm.recomputeConsensus()
	rm.syncStats(player)

	return player, nil
}

// Leave removes a player and scrubs every trace of them from the active
// round. Unknown ids succeed silently; the unload beacon fires on every
// tab close and must never error.
func (rm *Room) Leave(playerID string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	if playerID == "" {
		return newError(KindValidation, "player id is required")
	}
	if rm.findPlayer(playerID) == nil {
		return nil
	}

	kept := rm.players[:0]
	for _, p := range rm.players {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	rm.players = kept

	if rm.round != nil {
		hints := rm.round.Hints[:0]
		for _, h := range rm.round.Hints {
			if h.PlayerID != playerID {
				delete(h.Votes, playerID)
				hints = append(hints, h)
			}
		}
		rm.round.Hints = hints
		delete(rm.round.ReviewLocks, playerID)
		delete(rm.round.TypingHints, playerID)
		delete(rm.round.GuesserTyping, playerID)
		if rm.round.Guess != nil && rm.round.Guess.PlayerID == playerID {
			rm.round.Guess = nil
		}
		if rm.round.Stage != StageResult && !rm.hasRole(RoleGuesser) {
			rm.forceFinishRound()
		}
		rm.recomputeConsensus()
	}

	delete(rm.progress.EndVotes, playerID)
	// Fewer players may now satisfy the unanimous end vote.
	rm.evaluateEndVotes()

	return nil
}

func (rm *Room) applyAvatarToHints(playerID, avatar string) {
	if rm.round == nil {
		return
	}
	for _, h := range rm.round.Hints {
		if h.PlayerID == playerID {
			h.Avatar = avatar
		}
	}
}
