package commands

// Command words understood by the game, matched case-sensitively.
const (
	VerbHelp      = "help"
	VerbGo        = "go"
	VerbQuit      = "quit"
	VerbLook      = "look"
	VerbEat       = "eat"
	VerbBack      = "back"
	VerbStackBack = "stackBack"
	VerbTake      = "take"
	VerbDrop      = "drop"
	VerbCharge    = "charge"
	VerbFire      = "fire"
)

// Verbs lists the command words in the order help prints them.
var Verbs = []string{
	VerbHelp,
	VerbGo,
	VerbQuit,
	VerbLook,
	VerbEat,
	VerbBack,
	VerbStackBack,
	VerbTake,
	VerbDrop,
	VerbCharge,
	VerbFire,
}

// Command is one parsed line of player input: a verb and at most one argument.
type Command struct {
	Verb   string
	Arg    string
	HasArg bool
}

// NewCommand builds a command. An empty arg means no argument was given.
func NewCommand(verb string, arg string) *Command {
	return &Command{
		Verb:   verb,
		Arg:    arg,
		HasArg: arg != "",
	}
}

// IsKnown reports whether the verb is one of Verbs.
func (c *Command) IsKnown() bool {
	for _, v := range Verbs {
		if v == c.Verb {
			return true
		}
	}
	return false
}
