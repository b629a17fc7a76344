package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/game"
)

// Outcomes reported to the Recorder and the event journal.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeUnknown  = "unknown"
	OutcomeFailed   = "failed"
)

// CommandFunc runs one command against a world.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// HandlerFactory creates the CommandFunc for a verb.
type HandlerFactory interface {
	Create() (CommandFunc, error)
}

// Publisher provides the ability to publish messages to subjects
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Recorder counts executed commands.
type Recorder interface {
	CommandExecuted(verb string, outcome string)
}

// CommandContext is the state a CommandFunc works on. Handlers print
// player-facing text into it and set Quit to end the session.
type CommandContext struct {
	World   *game.World
	Command *Command
	Quit    bool

	lines []string
}

// Print queues a message for the player.
func (c *CommandContext) Print(msg string) {
	c.lines = append(c.lines, msg)
}

// Result is the outcome of a successful Exec.
type Result struct {
	Output string
	Quit   bool
}

// Event is published to the session journal after every command.
type Event struct {
	Session string `json:"session"`
	Verb    string `json:"verb"`
	Arg     string `json:"arg,omitempty"`
	Room    string `json:"room"`
	Outcome string `json:"outcome"`
}

type Handler struct {
	compiled  map[string]CommandFunc
	publisher Publisher
	recorder  Recorder
}

// NewHandler creates a handler with every built-in verb registered.
func NewHandler(opts ...HandlerOpt) (*Handler, error) {
	h := &Handler{
		compiled: make(map[string]CommandFunc),
	}

	for _, opt := range opts {
		opt(h)
	}

	factories := map[string]HandlerFactory{
		VerbHelp:      NewHelpHandlerFactory(Verbs),
		VerbGo:        &MoveHandlerFactory{},
		VerbQuit:      &QuitHandlerFactory{},
		VerbLook:      &LookHandlerFactory{},
		VerbEat:       &EatHandlerFactory{},
		VerbBack:      &BackHandlerFactory{},
		VerbStackBack: &StackBackHandlerFactory{},
		VerbTake:      &TakeHandlerFactory{},
		VerbDrop:      &DropHandlerFactory{},
		VerbCharge:    &ChargeHandlerFactory{},
		VerbFire:      &FireHandlerFactory{},
	}

	for _, verb := range Verbs {
		err := h.RegisterFactory(verb, factories[verb])
		if err != nil {
			return nil, fmt.Errorf("registering %q: %w", verb, err)
		}
	}

	return h, nil
}

// RegisterFactory compiles a factory and binds it to a verb.
func (h *Handler) RegisterFactory(verb string, factory HandlerFactory) error {
	if verb == "" {
		return fmt.Errorf("verb cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.compiled[verb]; exists {
		return fmt.Errorf("verb %q already registered", verb)
	}

	cmdFunc, err := factory.Create()
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	h.compiled[verb] = cmdFunc
	return nil
}

// Exec runs cmd against world. Player mistakes come back as *UserError;
// any other error is a system failure.
func (h *Handler) Exec(ctx context.Context, world *game.World, sessionId string, cmd *Command) (*Result, error) {
	cmdFunc, ok := h.compiled[cmd.Verb]
	if !ok {
		h.observe(ctx, world, sessionId, cmd, OutcomeUnknown)
		return nil, NewUserError(gotext.Get("I don't know what you mean..."))
	}

	cmdCtx := &CommandContext{
		World:   world,
		Command: cmd,
	}

	err := cmdFunc(ctx, cmdCtx)
	if err != nil {
		if _, ok := AsUserError(err); ok {
			h.observe(ctx, world, sessionId, cmd, OutcomeRejected)
		} else {
			h.observe(ctx, world, sessionId, cmd, OutcomeFailed)
		}
		return nil, err
	}

	h.observe(ctx, world, sessionId, cmd, OutcomeOK)

	return &Result{
		Output: strings.Join(cmdCtx.lines, "\n"),
		Quit:   cmdCtx.Quit,
	}, nil
}

func (h *Handler) observe(ctx context.Context, world *game.World, sessionId string, cmd *Command, outcome string) {
	// Unknown verbs are free text; keep them out of metric labels.
	verb := cmd.Verb
	if !cmd.IsKnown() {
		verb = "unknown"
	}

	if h.recorder != nil {
		h.recorder.CommandExecuted(verb, outcome)
	}

	if h.publisher == nil {
		return
	}

	data, err := json.Marshal(&Event{
		Session: sessionId,
		Verb:    verb,
		Arg:     cmd.Arg,
		Room:    world.Current().Description(),
		Outcome: outcome,
	})
	if err != nil {
		slog.WarnContext(ctx, "encoding command event", "session", sessionId, "error", err)
		return
	}

	err = h.publisher.Publish(JournalSubject(sessionId), data)
	if err != nil {
		slog.WarnContext(ctx, "publishing command event", "session", sessionId, "error", err)
	}
}

// JournalSubject is the subject a session's command events are published on.
func JournalSubject(sessionId string) string {
	return fmt.Sprintf("zuul.session.%s", sessionId)
}

// requireNoArg rejects a command that was given an argument it does not
// take, replying with msg.
func requireNoArg(cmd *Command, msg string) error {
	if cmd.HasArg {
		return NewUserError(msg)
	}
	return nil
}
