package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		line   string
		exp  *Command
	}{
		"blank line": {
			line: "   ",
		},
		"verb only": {
			line: "look",
			exp:  &Command{Verb: "look"},
		},
		"verb and argument": {
			line: "go east",
			exp:  &Command{Verb: "go", Arg: "east", HasArg: true},
		},
		"extra words dropped": {
			line: "take big shiny rock",
			exp:  &Command{Verb: "take", Arg: "big", HasArg: true},
		},
		"quoted argument": {
			line: `take "big rock"`,
			exp:  &Command{Verb: "take", Arg: "big rock", HasArg: true},
		},
		"case preserved": {
			line: "stackBack",
			exp:  &Command{Verb: "stackBack"},
		},
		"unbalanced quote": {
			line: `take "rock`,
			exp:  &Command{Verb: "take", Arg: `"rock`, HasArg: true},
		},
		"apostrophe": {
			line: "take don't",
			exp:  &Command{Verb: "take", Arg: "don't", HasArg: true},
		},
		"apostrophe with extra words": {
			line: "go it's dark",
			exp:  &Command{Verb: "go", Arg: "it's", HasArg: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Parse(tt.line)
			if tt.exp == nil {
				if got != nil {
					t.Errorf("expected nil command, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a command, got nil")
			}
			testutil.AssertEqual(t, "verb", got.Verb, tt.exp.Verb)
			testutil.AssertEqual(t, "arg", got.Arg, tt.exp.Arg)
			testutil.AssertEqual(t, "has arg", got.HasArg, tt.exp.HasArg)
		})
	}
}

func TestCommand_IsKnown(t *testing.T) {
	for _, verb := range Verbs {
		testutil.AssertEqual(t, verb, NewCommand(verb, "").IsKnown(), true)
	}
	testutil.AssertEqual(t, "Look", NewCommand("Look", "").IsKnown(), false)
	testutil.AssertEqual(t, "stackback", NewCommand("stackback", "").IsKnown(), false)
}
