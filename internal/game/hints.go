package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubmitHint records or replaces the caller's hint for the round.
// Replacing changes the text's identity, so prior elimination votes and
// the derived invalid flag are discarded.
func (rm *Room) SubmitHint(playerID, text string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return aerr
	}
	if rm.round == nil || rm.round.Stage != StageCollecting {
		return newError(KindConflict, "hints cannot be submitted right now")
	}
	if player.Role != RoleHint {
		return newError(KindRole, "only hint-givers can submit hints")
	}
	if _, locked := rm.round.ReviewLocks[player.ID]; locked {
		return newError(KindLocked, "hint is locked for review")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return newError(KindValidation, "hint text is required")
	}
	if rm.difficulty == DifficultyHard {
		if err := checkHardModeHint(text); err != nil {
			return err
		}
	}

	now := time.Now()
	if existing := rm.findHintByPlayer(player.ID); existing != nil {
		existing.Text = text
		existing.Avatar = player.Avatar
		existing.Votes = make(map[string]struct{})
		existing.Invalid = false
		existing.UpdatedAt = now
	} else {
		rm.round.Hints = append(rm.round.Hints, &Hint{
			ID:          uuid.NewString(),
			PlayerID:    player.ID,
			Author:      player.Name,
			Text:        text,
			Avatar:      player.Avatar,
			Votes:       make(map[string]struct{}),
			SubmittedAt: now,
			UpdatedAt:   now,
		})
	}

	delete(rm.round.TypingHints, player.ID)
	return nil
}

// ReviewStatus is the outcome of a begin-review call.
type ReviewStatus struct {
	AlreadyLocked bool `json:"alreadyLocked"`
	ReadyToReview bool `json:"readyToReview"`
}

// BeginReview marks the caller's hint as final. Once every current
// hint-giver is locked and has a hint on the board, the round advances
// to reviewing_hints; ReadyToReview reports whether this call was the
// one that tipped it over.
func (rm *Room) BeginReview(playerID string) (ReviewStatus, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return ReviewStatus{}, aerr
	}
	if rm.round == nil || rm.round.Stage != StageCollecting {
		return ReviewStatus{}, newError(KindConflict, "cannot move to review right now")
	}
	if player.Role != RoleHint {
		return ReviewStatus{}, newError(KindRole, "only hint-givers can begin review")
	}
	if rm.findHintByPlayer(player.ID) == nil {
		return ReviewStatus{}, newError(KindConflict, "submit a hint before locking it for review")
	}

	if _, locked := rm.round.ReviewLocks[player.ID]; locked {
		return ReviewStatus{AlreadyLocked: true}, nil
	}
	rm.round.ReviewLocks[player.ID] = struct{}{}
	delete(rm.round.TypingHints, player.ID)

	if !rm.allGiversReady() {
		return ReviewStatus{}, nil
	}
	rm.round.Stage = StageReviewing
	rm.round.TypingHints = make(map[string]struct{})
	rm.round.GuesserTyping = make(map[string]struct{})
	return ReviewStatus{ReadyToReview: true}, nil
}

// VoteEliminate adds or withdraws the caller's elimination vote on one
// hint, then recomputes validity for every hint: the roster may have
// shifted since the last vote, and stale voters must not keep a hint
// eliminated.
func (rm *Room) VoteEliminate(playerID, hintID string, wantsEliminate bool) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.touch()

	player, aerr := rm.requirePlayer(playerID)
	if aerr != nil {
		return aerr
	}
	if rm.round == nil || rm.round.Stage != StageReviewing {
		return newError(KindConflict, "hints cannot be marked right now")
	}
	if player.Role != RoleHint {
		return newError(KindRole, "only hint-givers can mark hints")
	}

	hint := rm.findHint(hintID)
	if hint == nil {
		return newError(KindNotFound, "hint not found")
	}

	if wantsEliminate {
		hint.Votes[player.ID] = struct{}{}
	} else {
		delete(hint.Votes, player.ID)
	}
	rm.recomputeConsensus()
	return nil
}

func (rm *Room) findHint(id string) *Hint {
	if rm.round == nil {
		return nil
	}
	for _, h := range rm.round.Hints {
		if h.ID == id {
			return h
		}
	}
	return nil
}

func (rm *Room) findHintByPlayer(playerID string) *Hint {
	if rm.round == nil {
		return nil
	}
	for _, h := range rm.round.Hints {
		if h.PlayerID == playerID {
			return h
		}
	}
	return nil
}

func (rm *Room) allGiversReady() bool {
	givers := rm.hintGiverIDs()
	if len(givers) == 0 {
		return false
	}
	for id := range givers {
		if _, locked := rm.round.ReviewLocks[id]; !locked {
			return false
		}
		if rm.findHintByPlayer(id) == nil {
			return false
		}
	}
	return true
}

func (rm *Room) recomputeConsensus() {
	if rm.round == nil {
		return
	}
	recomputeValidity(rm.round.Hints, rm.hintGiverIDs())
}

// recomputeValidity derives each hint's invalid flag from full-consensus
// gating: a hint is eliminated iff the roster is non-empty and every
// current hint-giver voted against it. Votes from ids no longer in the
// roster are pruned first.
func recomputeValidity(hints []*Hint, roster map[string]struct{}) {
	for _, h := range hints {
		for voter := range h.Votes {
			if _, ok := roster[voter]; !ok {
				delete(h.Votes, voter)
			}
		}
		h.Invalid = len(roster) > 0 && len(h.Votes) == len(roster)
	}
}
