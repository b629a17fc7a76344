package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-zuul/internal/commands"
	"github.com/pixil98/go-zuul/internal/game"
	"github.com/pixil98/go-zuul/internal/session"
)

func TestConsole_Start(t *testing.T) {
	h, err := commands.NewHandler()
	if err != nil {
		t.Fatalf("creating handler: %v", err)
	}
	m := session.NewManager(game.Campus(), h, session.WithSeed(1))

	tests := map[string]struct {
		input       string
		expContains string
	}{
		"quit stops the process": {
			input:       "help\nquit\n",
			expContains: "Your command words are:\nhelp go quit look eat back stackBack take drop charge fire",
		},
		"end of input stops the process": {
			input:       "look\n",
			expContains: "Player is not holding anything",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			stopped := false
			c := New(strings.NewReader(tt.input), &out, m, func() { stopped = true }, false)

			err := c.Start(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "stopped", stopped, true)
			if !strings.Contains(out.String(), tt.expContains) {
				t.Errorf("output does not contain %q:\n%s", tt.expContains, out.String())
			}
		})
	}
}

var _ io.ReadWriter = &stdio{}
