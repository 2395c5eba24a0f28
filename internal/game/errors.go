package game

import "fmt"

// Kind classifies a rejected action. Every kind maps to exactly one HTTP
// status at the transport edge; none of them mutate room state.
type Kind int

const (
	// KindValidation covers missing or malformed input.
	KindValidation Kind = iota
	// KindAuth covers unknown player ids.
	KindAuth
	// KindRole covers actions performed by the wrong role.
	KindRole
	// KindConflict covers wrong-stage actions, a taken guesser seat,
	// and a finished game.
	KindConflict
	// KindNotFound covers references to hints that do not exist.
	KindNotFound
	// KindLocked covers hint edits after the owner review-locked.
	KindLocked
)

// Error is the engine's only error type. Handlers inspect Kind to pick a
// status code; the message is safe to show to the caller.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
