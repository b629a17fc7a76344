package commands

import (
	"context"
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/game"
)

// EatHandlerFactory creates handlers that eat the held cookie.
type EatHandlerFactory struct{}

func (f *EatHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("Eat what?")); err != nil {
			return err
		}

		err := cmdCtx.World.Eat()
		switch {
		case errors.Is(err, game.ErrNotHolding):
			return NewUserError(gotext.Get("You are not holding anything to eat."))
		case errors.Is(err, game.ErrNotCookie):
			return NewUserError(gotext.Get("You can only eat a cookie."))
		case err != nil:
			return err
		}

		cmdCtx.Print(gotext.Get("You ate the cookie! You can now pick up items. (%d at most)", game.MaxPickupsPerCookie))
		return nil
	}, nil
}
