package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tatianab/zuul/internal/engine"
)

func TestTokenize(t *testing.T) {
	tests := map[string]struct {
		line      string
		expFirst  string
		expSecond string
	}{
		"empty":          {line: "", expFirst: "", expSecond: ""},
		"blank":          {line: "  \t ", expFirst: "", expSecond: ""},
		"one word":       {line: "look", expFirst: "look"},
		"two words":      {line: "go east", expFirst: "go", expSecond: "east"},
		"extra spacing":  {line: "  go\t  east  ", expFirst: "go", expSecond: "east"},
		"trailing words": {line: "go east quickly", expFirst: "go", expSecond: "east"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			first, second := Tokenize(tt.line)
			assert.Equal(t, tt.expFirst, first)
			assert.Equal(t, tt.expSecond, second)
		})
	}
}

func TestParse(t *testing.T) {
	tests := map[string]engine.Command{
		"go east":       {Word: engine.CmdGo, Argument: "east"},
		"quit now":      {Word: engine.CmdQuit, Argument: "now"},
		"quit":          {Word: engine.CmdQuit},
		"help":          {Word: engine.CmdHelp},
		"look":          {Word: engine.CmdLook},
		"eat cake":      {Word: engine.CmdEat, Argument: "cake"},
		"back":          {Word: engine.CmdBack},
		"open trapdoor": {Word: engine.CmdOpenTrapDoor, Argument: "trapdoor"},
		"close":         {Word: engine.CmdCloseTrapDoor},
		"?":             {Word: engine.CmdUnknown},
		"xyzzy":         {Word: engine.CmdUnknown},
		"Go east":       {Word: engine.CmdUnknown, Argument: "east"},
		"":              {Word: engine.CmdUnknown},
	}

	for line, exp := range tests {
		t.Run(line, func(t *testing.T) {
			assert.Equal(t, exp, Parse(line))
		})
	}
}
