package engine

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/tatianab/zuul/internal/models"
)

// Session tracks where the player is, where they have been, and when the game
// must end. The end of a session is signalled once, through Done, whether it
// comes from the deadline or from End.
type Session struct {
	ID string

	world    *models.World
	player   *models.Player
	history  []models.RoomID // bottom first, top last
	deadline time.Time

	ctx    context.Context
	cancel context.CancelCauseFunc
	stop   context.CancelFunc
}

// NewSession starts a session for player in world. The session ends on its own
// once limit has elapsed, or when parent is cancelled.
func NewSession(parent context.Context, world *models.World, player *models.Player, limit time.Duration) *Session {
	deadline := time.Now().Add(limit)
	ctx, cancel := context.WithCancelCause(parent)
	ctx, stop := context.WithDeadlineCause(ctx, deadline, ErrTimeUp)

	return &Session{
		ID:       uuid.New().String(),
		world:    world,
		player:   player,
		deadline: deadline,
		ctx:      ctx,
		cancel:   cancel,
		stop:     stop,
	}
}

// Current returns the ID of the room the player is in.
func (s *Session) Current() models.RoomID {
	return s.player.Room
}

func (s *Session) CurrentRoom() *models.Room {
	return s.world.Room(s.player.Room)
}

// History returns the previously visited rooms, oldest first.
func (s *Session) History() []models.RoomID {
	return slices.Clone(s.history)
}

// Go moves the player through the exit in direction. The room left behind is
// pushed onto the history.
func (s *Session) Go(direction string) (*models.Room, error) {
	room := s.CurrentRoom()
	if room == nil {
		return nil, fmt.Errorf("current room %s: %w", s.player.Room, models.ErrUnknownRoom)
	}
	to, ok := room.Exit(direction)
	if !ok {
		return nil, NewUserError(ErrInvalidDirection, "There is no door!")
	}
	next := s.world.Room(to)
	if next == nil {
		return nil, fmt.Errorf("exit %s from %s: %w", direction, room.ID, models.ErrUnknownRoom)
	}

	s.history = append(s.history, room.ID)
	s.player.Room = next.ID
	return next, nil
}

// Back swaps the current room with the most recently visited one. History
// keeps its length, so repeated calls alternate between the same two rooms.
func (s *Session) Back() (*models.Room, error) {
	if len(s.history) == 0 {
		return nil, NewUserError(ErrEmptyHistory, "You can't go back any further.")
	}
	top := len(s.history) - 1
	prev := s.world.Room(s.history[top])
	if prev == nil {
		return nil, fmt.Errorf("history room %s: %w", s.history[top], models.ErrUnknownRoom)
	}

	s.history[top] = s.player.Room
	s.player.Room = prev.ID
	return prev, nil
}

func (s *Session) Deadline() time.Time {
	return s.deadline
}

// Remaining returns the time left before the deadline, never less than zero.
func (s *Session) Remaining() time.Duration {
	return max(time.Until(s.deadline), 0)
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Err returns nil while the session runs and the reason it ended afterwards:
// ErrTimeUp, ErrQuit, or the cause of the parent context's cancellation.
func (s *Session) Err() error {
	if s.ctx.Err() == nil {
		return nil
	}
	return context.Cause(s.ctx)
}

// Context returns a context that is cancelled when the session ends.
func (s *Session) Context() context.Context {
	return s.ctx
}

// End finishes the session with cause. Only the first call has any effect.
func (s *Session) End(cause error) {
	s.cancel(cause)
	s.stop()
}
