package engine

type CommandWord int

// The recognised command words. The order here is the order HELP lists them.
const (
	CmdGo CommandWord = iota
	CmdQuit
	CmdHelp
	CmdUnknown
	CmdLook
	CmdEat
	CmdBack
	CmdCloseTrapDoor
	CmdOpenTrapDoor
)

// commandStrings maps every command word to what the player types. It is the
// only place surface strings are defined.
var commandStrings = [...]string{
	CmdGo:            "go",
	CmdQuit:          "quit",
	CmdHelp:          "help",
	CmdUnknown:       "?",
	CmdLook:          "look",
	CmdEat:           "eat",
	CmdBack:          "back",
	CmdCloseTrapDoor: "close",
	CmdOpenTrapDoor:  "open",
}

var commandLookup = func() map[string]CommandWord {
	m := make(map[string]CommandWord, len(commandStrings))
	for w, s := range commandStrings {
		m[s] = CommandWord(w)
	}
	return m
}()

func (c CommandWord) String() string {
	if c < 0 || int(c) >= len(commandStrings) {
		return commandStrings[CmdUnknown]
	}
	return commandStrings[c]
}

// LookupWord returns the command word typed as s. Anything unrecognised is
// CmdUnknown.
func LookupWord(s string) CommandWord {
	if w, ok := commandLookup[s]; ok {
		return w
	}
	return CmdUnknown
}

// CommandWords returns the surface strings a player may type, excluding the
// unknown placeholder.
func CommandWords() []string {
	words := make([]string, 0, len(commandStrings)-1)
	for w, s := range commandStrings {
		if CommandWord(w) == CmdUnknown {
			continue
		}
		words = append(words, s)
	}
	return words
}

// Command is a classified player command with its optional second word.
type Command struct {
	Word     CommandWord
	Argument string
}

func (c Command) HasArgument() bool {
	return c.Argument != ""
}

func (c Command) String() string {
	if c.HasArgument() {
		return c.Word.String() + " " + c.Argument
	}
	return c.Word.String()
}
