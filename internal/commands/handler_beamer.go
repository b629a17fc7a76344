package commands

import (
	"context"
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/game"
)

// ChargeHandlerFactory creates handlers that charge the held beamer with the
// current room.
type ChargeHandlerFactory struct{}

func (f *ChargeHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("Charge what?")); err != nil {
			return err
		}

		_, err := cmdCtx.World.Charge()
		switch {
		case errors.Is(err, game.ErrNotHolding):
			return NewUserError(gotext.Get("You are not holding anything."))
		case errors.Is(err, game.ErrNotBeamer):
			return NewUserError(gotext.Get("You must be holding a beamer to charge it."))
		case errors.Is(err, game.ErrAlreadyCharged):
			return NewUserError(gotext.Get("The beamer is already charged."))
		case err != nil:
			return err
		}

		cmdCtx.Print(gotext.Get("The beamer has been charged!"))
		return nil
	}, nil
}

// FireHandlerFactory creates handlers that fire the held beamer, sending the
// player back to the room it was charged in.
type FireHandlerFactory struct{}

func (f *FireHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("Fire what?")); err != nil {
			return err
		}

		dest, err := cmdCtx.World.Fire()
		switch {
		case errors.Is(err, game.ErrNotHolding):
			return NewUserError(gotext.Get("You are not holding anything."))
		case errors.Is(err, game.ErrNotBeamer):
			return NewUserError(gotext.Get("You must be holding a beamer to fire it."))
		case errors.Is(err, game.ErrNotCharged):
			return NewUserError(gotext.Get("The beamer is not charged."))
		case err != nil:
			return err
		}

		desc, err := LongDescription(dest)
		if err != nil {
			return err
		}

		cmdCtx.Print(gotext.Get("Beamer fired! You are transported to %s", dest.Description()))
		cmdCtx.Print(desc)
		return nil
	}, nil
}
