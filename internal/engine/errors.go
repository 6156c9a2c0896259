package engine

import (
	"errors"

	"github.com/tatianab/zuul/internal/models"
)

// Kinds of rejected command. None of them change game state.
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrEmptyHistory      = errors.New("empty history")
	ErrMalformedArgument = errors.New("malformed argument")
	ErrNoTrapDoor        = errors.New("no trap door applicable")
	ErrItemNotPresent    = models.ErrItemNotPresent
	ErrItemNotHeld       = models.ErrItemNotHeld
	ErrSessionEnded      = errors.New("session ended")
)

// Reasons a session ends, available from Session.Err.
var (
	ErrQuit   = errors.New("player quit")
	ErrTimeUp = errors.New("time limit reached")
)

// UserError is a rejection to show the player. It wraps the kind of rejection
// so callers can test it with errors.Is.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

// NewUserError creates a player-facing error of the given kind.
func NewUserError(kind error, msg string) *UserError {
	return &UserError{Kind: kind, Message: msg}
}
