package commands

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-zuul/internal/game"
)

const (
	outsideDesc = "You are outside the main entrance of the university.\n" +
		"Exits: east north south west\n" +
		"Items:\n" +
		"  tree1: a fir tree that weighs 500.5kg.\n" +
		"  tree2: a fir tree that weighs 500.5kg."
	theatreDesc = "You are in a lecture theatre.\n" +
		"Exits: west\n" +
		"Items:\n" +
		"  beamer1: a portable teleportation device that weighs 3.5kg.\n" +
		"  cookie: a chocolate cookie that weighs 2kg."
	notHolding = "Player is not holding anything"
)

type recordingPublisher struct {
	subjects []string
	events   []Event
	err      error
}

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	p.subjects = append(p.subjects, subject)
	var ev Event
	if err := json.Unmarshal(data, &ev); err == nil {
		p.events = append(p.events, ev)
	}
	return p.err
}

type countingRecorder struct {
	counts map[string]int
}

func (r *countingRecorder) CommandExecuted(verb string, outcome string) {
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[verb+"/"+outcome]++
}

func newCampus(t *testing.T) *game.World {
	t.Helper()
	w, err := game.Campus().NewWorld(rand.NewSource(1))
	if err != nil {
		t.Fatalf("building campus: %v", err)
	}
	return w
}

func newTestHandler(t *testing.T, opts ...HandlerOpt) *Handler {
	t.Helper()
	h, err := NewHandler(opts...)
	if err != nil {
		t.Fatalf("creating handler: %v", err)
	}
	return h
}

// run parses and executes a line, returning what the player would see.
func run(t *testing.T, h *Handler, w *game.World, line string) (string, bool) {
	t.Helper()
	cmd := Parse(line)
	if cmd == nil {
		t.Fatalf("parsing %q: no command", line)
	}

	res, err := h.Exec(context.Background(), w, "test-session", cmd)
	if err != nil {
		msg, ok := AsUserError(err)
		if !ok {
			t.Fatalf("executing %q: unexpected system error: %v", line, err)
		}
		return msg, false
	}
	return res.Output, res.Quit
}

type step struct {
	line string
	exp  string
}

func runSteps(t *testing.T, h *Handler, w *game.World, steps []step) {
	t.Helper()
	for i, s := range steps {
		got, _ := run(t, h, w, s.line)
		if got != s.exp {
			t.Fatalf("step %d %q:\ngot:\n%s\nexpected:\n%s", i, s.line, got, s.exp)
		}
	}
}

func TestHandler_Scenarios(t *testing.T) {
	tests := map[string][]step{
		"look": {
			{"look", outsideDesc + "\n\n" + notHolding},
			{"look around", "Look what?"},
		},
		"go and back toggle": {
			{"go", "Go where?"},
			{"go up", "There is no door!"},
			{"back", "No room to go back to.\n\n" + notHolding},
			{"go east", theatreDesc + "\n\n" + notHolding},
			{"back", outsideDesc + "\n\n" + notHolding},
			{"back", theatreDesc + "\n\n" + notHolding},
			{"back now", "Back what?"},
		},
		"stackBack walks history": {
			{"stackBack", "No room to go stack back to.\n\n" + notHolding},
			{"go east", theatreDesc + "\n\n" + notHolding},
			{"stackBack", outsideDesc + "\n\n" + notHolding},
			{"stackBack", "No room to go stack back to.\n\n" + notHolding},
			{"stackBack please", "StackBack what?"},
		},
		"cookie and pickup gate": {
			{"take", "take what?"},
			{"take tree1", "You need to eat a cookie before you can pick up other items."},
			{"take cookie", "There is no cookie in this room."},
			{"go east", theatreDesc + "\n\n" + notHolding},
			{"take cookie", "You picked up a cookie."},
			{"take beamer1", "You are already holding something. Drop it first."},
			{"look", strings.Replace(theatreDesc, "\n  cookie: a chocolate cookie that weighs 2kg.", "", 1) + "\n\nPlayer is holding cookie"},
			{"eat it", "Eat what?"},
			{"eat", "You ate the cookie! You can now pick up items. (5 at most)"},
			{"eat", "You are not holding anything to eat."},
			{"take cookie", "There is no cookie in this room."},
			{"take chair1", "That item is not in the room."},
			{"take beamer1", "You picked up beamer1"},
			{"eat", "You can only eat a cookie."},
			{"drop beamer1", "drop what?"},
			{"drop", "You dropped beamer1"},
			{"drop", "You are not holding anything."},
		},
		"beamer protocol": {
			{"charge", "You are not holding anything."},
			{"fire", "You are not holding anything."},
			{"go east", theatreDesc + "\n\n" + notHolding},
			{"take cookie", "You picked up a cookie."},
			{"charge", "You must be holding a beamer to charge it."},
			{"fire", "You must be holding a beamer to fire it."},
			{"eat", "You ate the cookie! You can now pick up items. (5 at most)"},
			{"take beamer1", "You picked up beamer1"},
			{"fire", "The beamer is not charged."},
			{"charge it", "Charge what?"},
			{"charge", "The beamer has been charged!"},
			{"charge", "The beamer is already charged."},
			{"go west", outsideDesc + "\n\nPlayer is holding beamer1"},
			{"fire away", "Fire what?"},
			{"fire", "Beamer fired! You are transported to in a lecture theatre\n" +
				"You are in a lecture theatre.\nExits: west"},
			{"fire", "The beamer is not charged."},
		},
		"unknown and help": {
			{"dance", "I don't know what you mean..."},
			{"GO east", "I don't know what you mean..."},
			{"help", "You are lost. You are alone. You wander\naround at the university.\n\n" +
				"Your command words are:\nhelp go quit look eat back stackBack take drop charge fire"},
		},
	}

	for name, steps := range tests {
		t.Run(name, func(t *testing.T) {
			runSteps(t, newTestHandler(t), newCampus(t), steps)
		})
	}
}

func TestHandler_Fire_DoesNotPushHistory(t *testing.T) {
	h := newTestHandler(t)
	w := newCampus(t)

	runSteps(t, h, w, []step{
		{"go east", theatreDesc + "\n\n" + notHolding},
		{"take cookie", "You picked up a cookie."},
		{"eat", "You ate the cookie! You can now pick up items. (5 at most)"},
		{"take beamer1", "You picked up beamer1"},
		{"charge", "The beamer has been charged!"},
		{"go west", outsideDesc + "\n\nPlayer is holding beamer1"},
	})
	depth := len(w.History())

	run(t, h, w, "fire")
	testutil.AssertEqual(t, "history depth", len(w.History()), depth)
	testutil.AssertEqual(t, "previous", w.Previous().Description(), "outside the main entrance of the university")

	got, _ := run(t, h, w, "back")
	testutil.AssertEqual(t, "back after fire", got, outsideDesc+"\n\nPlayer is holding beamer1")
}

func TestHandler_PickupCap(t *testing.T) {
	h := newTestHandler(t)
	w := newCampus(t)

	runSteps(t, h, w, []step{
		{"go east", theatreDesc + "\n\n" + notHolding},
		{"take cookie", "You picked up a cookie."},
		{"eat", "You ate the cookie! You can now pick up items. (5 at most)"},
	})

	for i := 0; i < game.MaxPickupsPerCookie; i++ {
		runSteps(t, h, w, []step{
			{"take beamer1", "You picked up beamer1"},
			{"drop", "You dropped beamer1"},
		})
	}

	runSteps(t, h, w, []step{
		{"take beamer1", "You are hungry again! Find and eat a cookie to pick up more items."},
	})
	testutil.AssertEqual(t, "nothing held", w.Held() == nil, true)
}

func TestHandler_Quit(t *testing.T) {
	tests := map[string]struct {
		line    string
		expQuit bool
		expOut  string
	}{
		"quit ends the session": {
			line:    "quit",
			expQuit: true,
		},
		"quit with argument is rejected": {
			line:   "quit now",
			expOut: "Quit what?",
		},
		"extra words are ignored": {
			line:   "quit now please",
			expOut: "Quit what?",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, quit := run(t, newTestHandler(t), newCampus(t), tt.line)
			testutil.AssertEqual(t, "quit", quit, tt.expQuit)
			testutil.AssertEqual(t, "output", out, tt.expOut)
		})
	}
}

func TestHandler_Observers(t *testing.T) {
	pub := &recordingPublisher{}
	rec := &countingRecorder{}
	h := newTestHandler(t, WithPublisher(pub), WithRecorder(rec))
	w := newCampus(t)

	run(t, h, w, "go east")
	run(t, h, w, "go up")
	run(t, h, w, "dance")

	testutil.AssertEqual(t, "go ok", rec.counts["go/ok"], 1)
	testutil.AssertEqual(t, "go rejected", rec.counts["go/rejected"], 1)
	testutil.AssertEqual(t, "unknown verb", rec.counts["unknown/unknown"], 1)

	testutil.AssertEqual(t, "event count", len(pub.events), 3)
	testutil.AssertEqual(t, "subject", pub.subjects[0], "zuul.session.test-session")
	first := pub.events[0]
	testutil.AssertEqual(t, "event session", first.Session, "test-session")
	testutil.AssertEqual(t, "event verb", first.Verb, "go")
	testutil.AssertEqual(t, "event arg", first.Arg, "east")
	testutil.AssertEqual(t, "event room", first.Room, "in a lecture theatre")
	testutil.AssertEqual(t, "event outcome", first.Outcome, OutcomeOK)
	testutil.AssertEqual(t, "unknown verb not journaled raw", pub.events[2].Verb, "unknown")
}

func TestHandler_PublishFailureIsNotFatal(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("connection closed")}
	h := newTestHandler(t, WithPublisher(pub))

	out, _ := run(t, h, newCampus(t), "look")
	testutil.AssertEqual(t, "output", out, outsideDesc+"\n\n"+notHolding)
}

func TestHandler_RegisterFactory(t *testing.T) {
	h := newTestHandler(t)

	tests := map[string]struct {
		verb    string
		factory HandlerFactory
		expErr  string
	}{
		"empty verb": {
			factory: &LookHandlerFactory{},
			expErr:  "verb cannot be empty",
		},
		"nil factory": {
			verb:   "peek",
			expErr: "handler factory cannot be nil",
		},
		"duplicate verb": {
			verb:    VerbLook,
			factory: &LookHandlerFactory{},
			expErr:  `verb "look" already registered`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := h.RegisterFactory(tt.verb, tt.factory)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}
