package commands

import (
	"context"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// HelpHandlerFactory creates handlers that list the command words.
type HelpHandlerFactory struct {
	verbs []string
}

// NewHelpHandlerFactory creates a new HelpHandlerFactory listing verbs in order.
func NewHelpHandlerFactory(verbs []string) *HelpHandlerFactory {
	return &HelpHandlerFactory{verbs: verbs}
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	text, err := ExpandTemplate(gotext.Get(helpTemplate), map[string]any{
		"Verbs": f.verbs,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering help: %w", err)
	}

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		cmdCtx.Print(text)
		return nil
	}, nil
}
