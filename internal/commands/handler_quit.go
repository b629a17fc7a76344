package commands

import (
	"context"

	"github.com/leonelquinteros/gotext"
)

// QuitHandlerFactory creates handlers that end the session.
type QuitHandlerFactory struct{}

func (f *QuitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("Quit what?")); err != nil {
			return err
		}

		cmdCtx.Quit = true
		return nil
	}, nil
}
