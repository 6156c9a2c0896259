package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tatianab/zuul/internal/logger"
	"github.com/tatianab/zuul/internal/models"
)

// TurnRecord is one command and its outcome.
type TurnRecord struct {
	Input  string
	Output string
	Status string // "PLAYING" or "ENDED"
}

type Options struct {
	TimeLimit time.Duration
	Eater     Eater
	Logger    logrus.FieldLogger
}

// Engine ties a world, its player and a session together and keeps a
// transcript of the game.
type Engine struct {
	world       *models.World
	player      *models.Player
	session     *Session
	interpreter *Interpreter
	log         logrus.FieldLogger
	transcript  []TurnRecord
}

// NewEngine starts a new game in world. The time limit starts counting now.
func NewEngine(ctx context.Context, world *models.World, opts Options) (*Engine, error) {
	start := world.Start()
	if start == nil {
		return nil, models.ErrNoStartRoom
	}
	if opts.TimeLimit <= 0 {
		return nil, fmt.Errorf("time limit must be positive, got %s", opts.TimeLimit)
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	player := models.NewPlayer(start.ID)
	session := NewSession(ctx, world, player, opts.TimeLimit)
	log = logger.WithSession(log, session.ID)

	log.WithFields(logrus.Fields{
		"start":    start.ID,
		"deadline": session.Deadline(),
	}).Info("session started")

	return &Engine{
		world:       world,
		player:      player,
		session:     session,
		interpreter: NewInterpreter(session, opts.Eater, log),
		log:         log,
	}, nil
}

// Close ends the session if it is still running and releases its timer.
func (e *Engine) Close() {
	e.session.End(context.Canceled)
	e.log.WithField("cause", e.session.Err()).Info("session closed")
}

// Welcome is the text shown before the first command.
func (e *Engine) Welcome() string {
	var sb strings.Builder
	sb.WriteString("Welcome to the World of Zuul!\n")
	sb.WriteString("World of Zuul is a new, incredibly boring adventure game.\n")
	fmt.Fprintf(&sb, "Type '%s' if you need help.\n\n", CmdHelp)
	sb.WriteString(e.session.CurrentRoom().LongDescription())
	return sb.String()
}

// ProcessTurn runs one command and records it in the transcript.
func (e *Engine) ProcessTurn(cmd Command) Result {
	res := e.interpreter.Execute(cmd)
	e.transcript = append(e.transcript, TurnRecord{
		Input:  cmd.String(),
		Output: res.Output,
		Status: e.interpreter.State().String(),
	})
	return res
}

// PickUp moves the named item from the current room into the inventory.
func (e *Engine) PickUp(name string) error {
	if e.session.Err() != nil {
		return ErrSessionEnded
	}
	room := e.session.CurrentRoom()
	if room == nil {
		return fmt.Errorf("current room %s: %w", e.session.Current(), models.ErrUnknownRoom)
	}
	item, ok := models.FindItem(name, room.Items())
	if !ok {
		return NewUserError(ErrItemNotPresent, fmt.Sprintf("There is no %s here.", name))
	}
	return e.player.PickUp(e.world, item)
}

// Drop moves the named item from the inventory into the current room.
func (e *Engine) Drop(name string) error {
	if e.session.Err() != nil {
		return ErrSessionEnded
	}
	item, ok := models.FindItem(name, e.player.Inventory())
	if !ok {
		return NewUserError(ErrItemNotHeld, fmt.Sprintf("You are not carrying %s.", name))
	}
	return e.player.Drop(e.world, item)
}

func (e *Engine) Inventory() []models.Item {
	return e.player.Inventory()
}

func (e *Engine) CurrentRoom() *models.Room {
	return e.session.CurrentRoom()
}

func (e *Engine) Session() *Session {
	return e.session
}

func (e *Engine) State() State {
	return e.interpreter.State()
}

// Transcript returns every turn played so far.
func (e *Engine) Transcript() []TurnRecord {
	return append([]TurnRecord(nil), e.transcript...)
}

// Done is closed when the game ends for any reason.
func (e *Engine) Done() <-chan struct{} {
	return e.session.Done()
}

// EndMessage is the final line to show once Done is closed.
func (e *Engine) EndMessage() string {
	if errors.Is(e.session.Err(), ErrTimeUp) {
		return TimeUpMessage
	}
	return GoodbyeMessage
}
