package commands

import (
	"context"
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/game"
)

// DropHandlerFactory creates handlers that put the held item down.
type DropHandlerFactory struct{}

func (f *DropHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("drop what?")); err != nil {
			return err
		}

		item, err := cmdCtx.World.Drop()
		if errors.Is(err, game.ErrNotHolding) {
			return NewUserError(gotext.Get("You are not holding anything."))
		}
		if err != nil {
			return err
		}

		cmdCtx.Print(gotext.Get("You dropped %s", item.Name()))
		return nil
	}, nil
}
