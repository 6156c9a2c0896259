// Package parser turns a line typed by the player into a command.
package parser

import (
	"strings"

	"github.com/tatianab/zuul/internal/engine"
)

// Tokenize splits line on whitespace and returns its first two words. Any
// further words are ignored.
func Tokenize(line string) (first, second string) {
	fields := strings.Fields(line)
	if len(fields) > 0 {
		first = fields[0]
	}
	if len(fields) > 1 {
		second = fields[1]
	}
	return first, second
}

// Parse classifies line. Unrecognised first words give engine.CmdUnknown.
func Parse(line string) engine.Command {
	first, second := Tokenize(line)
	return engine.Command{
		Word:     engine.LookupWord(first),
		Argument: second,
	}
}
