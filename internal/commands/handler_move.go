package commands

import (
	"context"
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/game"
)

// MoveHandlerFactory creates handlers that move the player through an exit.
// The argument is the direction to take.
type MoveHandlerFactory struct{}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if !cmdCtx.Command.HasArg {
			return NewUserError(gotext.Get("Go where?"))
		}

		_, err := cmdCtx.World.Go(cmdCtx.Command.Arg)
		if errors.Is(err, game.ErrNoExit) {
			return NewUserError(gotext.Get("There is no door!"))
		}
		if err != nil {
			return err
		}

		return printRoom(cmdCtx)
	}, nil
}

// BackHandlerFactory creates handlers that toggle between the current and
// previous rooms.
type BackHandlerFactory struct{}

func (f *BackHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("Back what?")); err != nil {
			return err
		}

		_, err := cmdCtx.World.Back()
		if errors.Is(err, game.ErrNoPreviousRoom) {
			return withStatus(cmdCtx, gotext.Get("No room to go back to."))
		}
		if err != nil {
			return err
		}

		return printRoom(cmdCtx)
	}, nil
}

// StackBackHandlerFactory creates handlers that walk back through the rooms
// the player has left, most recent first.
type StackBackHandlerFactory struct{}

func (f *StackBackHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := requireNoArg(cmdCtx.Command, gotext.Get("StackBack what?")); err != nil {
			return err
		}

		_, err := cmdCtx.World.StackBack()
		if errors.Is(err, game.ErrHistoryEmpty) {
			return withStatus(cmdCtx, gotext.Get("No room to go stack back to."))
		}
		if err != nil {
			return err
		}

		return printRoom(cmdCtx)
	}, nil
}

// withStatus rejects the command with msg followed by the holding status.
func withStatus(cmdCtx *CommandContext, msg string) error {
	return NewUserError(msg + "\n\n" + HoldingStatus(cmdCtx.World.Held()))
}
