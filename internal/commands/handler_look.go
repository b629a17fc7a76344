package commands

import (
	"context"

	"github.com/leonelquinteros/gotext"
)

// LookHandlerFactory creates handlers that display the current room.
type LookHandlerFactory struct{}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("Look what?")); err != nil {
			return err
		}

		return printRoom(cmdCtx)
	}, nil
}
