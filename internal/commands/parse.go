package commands

import (
	"strings"

	"github.com/buildkite/shellwords"
)

// Parse splits a line of input into a Command. Only the first two words are
// kept; anything after the argument is ignored. A blank line yields nil.
//
// Quoting follows POSIX shell rules, so `take "big rock"` has one argument.
// A line that does not quote cleanly, such as `take don't`, is split on
// whitespace instead.
func Parse(line string) *Command {
	parts, err := shellwords.SplitPosix(line)
	if err != nil {
		parts = strings.Fields(line)
	}

	switch len(parts) {
	case 0:
		return nil
	case 1:
		return NewCommand(parts[0], "")
	default:
		return NewCommand(parts[0], parts[1])
	}
}
