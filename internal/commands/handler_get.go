package commands

import (
	"context"
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/game"
)

// TakeHandlerFactory creates handlers for picking up items.
// The argument is the name of the item.
type TakeHandlerFactory struct{}

func (f *TakeHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if !cmdCtx.Command.HasArg {
			return NewUserError(gotext.Get("take what?"))
		}

		name := cmdCtx.Command.Arg
		item, err := cmdCtx.World.Take(name)
		switch {
		case errors.Is(err, game.ErrAlreadyHolding):
			return NewUserError(gotext.Get("You are already holding something. Drop it first."))
		case errors.Is(err, game.ErrItemNotFound) && name == game.CookieName:
			return NewUserError(gotext.Get("There is no cookie in this room."))
		case errors.Is(err, game.ErrItemNotFound):
			return NewUserError(gotext.Get("That item is not in the room."))
		case errors.Is(err, game.ErrNotEaten):
			return NewUserError(gotext.Get("You need to eat a cookie before you can pick up other items."))
		case errors.Is(err, game.ErrHungry):
			return NewUserError(gotext.Get("You are hungry again! Find and eat a cookie to pick up more items."))
		case err != nil:
			return err
		}

		if game.IsCookie(item) {
			cmdCtx.Print(gotext.Get("You picked up a cookie."))
			return nil
		}

		cmdCtx.Print(gotext.Get("You picked up %s", item.Name()))
		return nil
	}, nil
}
