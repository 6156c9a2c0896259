package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tatianab/zuul/internal/models"
)

type State int

const (
	StateRunning State = iota
	StateEnded
)

func (s State) String() string {
	if s == StateEnded {
		return "ENDED"
	}
	return "PLAYING"
}

const (
	GoodbyeMessage  = "Thank you for playing.  Good bye."
	TimeUpMessage   = "Time's up! Game over."
	GameOverMessage = "The game is over."
)

// Result is what happened in response to a command. Err is set when the
// command was rejected, usually as a *UserError whose message is also Output.
type Result struct {
	Output string
	Err    error
	Ended  bool
}

func rejected(err error) Result {
	return Result{Output: err.Error(), Err: err}
}

// Interpreter applies commands to a session. It has two states: running and
// ended. Once ended it rejects everything.
type Interpreter struct {
	session *Session
	eater   Eater
	state   State
	log     logrus.FieldLogger
}

func NewInterpreter(session *Session, eater Eater, log logrus.FieldLogger) *Interpreter {
	if eater == nil {
		eater = defaultEater{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Interpreter{
		session: session,
		eater:   eater,
		log:     log,
	}
}

func (in *Interpreter) State() State {
	return in.state
}

// Execute applies cmd and reports the outcome. It never panics and never
// leaves state half changed: rejected commands change nothing.
func (in *Interpreter) Execute(cmd Command) Result {
	if in.state == StateRunning && in.session.Err() != nil {
		in.state = StateEnded
	}
	if in.state == StateEnded {
		return Result{Output: GameOverMessage, Err: ErrSessionEnded, Ended: true}
	}

	from := in.session.Current()
	res := in.dispatch(cmd)

	entry := in.log.WithFields(logrus.Fields{
		"command":  cmd.Word.String(),
		"argument": cmd.Argument,
		"from":     from,
		"to":       in.session.Current(),
	})
	var uerr *UserError
	switch {
	case res.Err == nil:
		entry.Debug("command processed")
	case errors.As(res.Err, &uerr):
		entry.WithField("rejection", uerr.Kind.Error()).Debug("command rejected")
	default:
		entry.WithError(res.Err).Warn("command failed")
	}
	return res
}

func (in *Interpreter) dispatch(cmd Command) Result {
	if in.session.CurrentRoom() == nil {
		return Result{
			Output: "Something is wrong with this place.",
			Err:    fmt.Errorf("current room %s: %w", in.session.Current(), models.ErrUnknownRoom),
		}
	}

	switch cmd.Word {
	case CmdHelp:
		return Result{Output: helpText()}

	case CmdGo:
		if !cmd.HasArgument() {
			return rejected(NewUserError(ErrMalformedArgument, "Go where?"))
		}
		return in.move(in.session.Go(cmd.Argument))

	case CmdLook:
		if cmd.HasArgument() {
			return rejected(NewUserError(ErrMalformedArgument, "Look what?"))
		}
		return Result{Output: in.session.CurrentRoom().LongDescription()}

	case CmdEat:
		return Result{Output: in.eater.Eat(cmd.Argument)}

	case CmdBack:
		return in.move(in.session.Back())

	case CmdOpenTrapDoor:
		td, res, ok := in.trapDoor(cmd)
		if !ok {
			return res
		}
		td.Open()
		return Result{Output: "You open the trap door."}

	case CmdCloseTrapDoor:
		td, res, ok := in.trapDoor(cmd)
		if !ok {
			return res
		}
		td.Close()
		return Result{Output: "You close the trap door."}

	case CmdQuit:
		if cmd.HasArgument() {
			return rejected(NewUserError(ErrMalformedArgument, "Quit what?"))
		}
		in.state = StateEnded
		in.session.End(ErrQuit)
		return Result{Output: GoodbyeMessage, Ended: true}

	default:
		return rejected(NewUserError(ErrUnknownCommand, "I don't know what you mean..."))
	}
}

// trapDoorNames are the second words that refer to a room's trap door. The
// tokenizer keeps only two words, so "trap door" arrives as "trap".
var trapDoorNames = map[string]bool{"": true, "trapdoor": true, "trap": true, "door": true}

// trapDoor returns the current room's trap door, or a rejection when the
// command names something else. Opening an open door or closing a closed one
// is allowed and changes nothing.
func (in *Interpreter) trapDoor(cmd Command) (*models.TrapDoor, Result, bool) {
	if !trapDoorNames[strings.ToLower(cmd.Argument)] {
		return nil, rejected(NewUserError(ErrNoTrapDoor, fmt.Sprintf("There is no %s here.", cmd.Argument))), false
	}
	return in.session.CurrentRoom().TrapDoor(), Result{}, true
}

func (in *Interpreter) move(room *models.Room, err error) Result {
	if err != nil {
		var uerr *UserError
		if errors.As(err, &uerr) {
			return rejected(uerr)
		}
		return Result{Output: "Something is wrong with this place.", Err: err}
	}
	return Result{Output: room.LongDescription()}
}

func helpText() string {
	var sb strings.Builder
	sb.WriteString("You are lost. You are alone. You wander\n")
	sb.WriteString("around at the university.\n\n")
	sb.WriteString("Your command words are:\n")
	sb.WriteString(strings.Join(CommandWords(), " "))
	return sb.String()
}
