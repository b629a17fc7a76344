package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/commands"
	"github.com/pixil98/go-zuul/internal/display"
	"github.com/pixil98/go-zuul/internal/game"
)

const prompt = "> "

// Session plays one game over a line-oriented connection.
type Session struct {
	id         string
	conn       io.ReadWriter
	world      *game.World
	cmdHandler *commands.Handler

	painter *display.Painter
	width   int
}

func New(conn io.ReadWriter, world *game.World, cmdHandler *commands.Handler, opts ...SessionOpt) *Session {
	s := &Session{
		id:         uuid.New().String(),
		conn:       conn,
		world:      world,
		cmdHandler: cmdHandler,
		width:      display.DefaultWidth,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Id returns the session's unique identifier.
func (s *Session) Id() string {
	return s.id
}

// Play runs the game until the player quits, the input ends, or ctx is
// canceled. Returns nil when the player quits or hangs up.
func (s *Session) Play(ctx context.Context) error {
	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	err := s.welcome()
	if err != nil {
		return err
	}

	for {
		err = s.prompt()
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				// Input closed (connection lost or stdin at EOF)
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			quit, err := s.handleLine(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return s.writeLine(s.painter.Paint(display.ColorFarewell, gotext.Get("Thank you for playing.  Good bye.")))
			}
		}
	}
}

// handleLine runs one line of input and reports whether the player quit.
func (s *Session) handleLine(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	cmd := commands.Parse(line)
	if cmd == nil {
		return false, nil
	}

	res, err := s.cmdHandler.Exec(ctx, s.world, s.id, cmd)
	if err != nil {
		return false, s.writeError(err)
	}

	if res.Output != "" {
		err = s.writeLine(res.Output)
		if err != nil {
			return false, err
		}
	}

	return res.Quit, nil
}

// writeError shows a UserError to the player. Anything else is a system
// failure and ends the session.
func (s *Session) writeError(err error) error {
	if msg, ok := commands.AsUserError(err); ok {
		return s.writeLine(s.painter.Paint(display.ColorDenied, msg))
	}
	slog.Error("command execution failed", "session", s.id, "error", err)
	return fmt.Errorf("command execution failed: %w", err)
}

func (s *Session) welcome() error {
	desc, err := commands.LongDescription(s.world.Current())
	if err != nil {
		return fmt.Errorf("rendering start room: %w", err)
	}

	banner := strings.Join([]string{
		"",
		gotext.Get("Welcome to the World of Zuul!"),
		gotext.Get("World of Zuul is a new, incredibly boring adventure game."),
		gotext.Get("Type 'help' if you need help."),
		"",
	}, "\n")

	return s.writeLine(s.painter.Paint(display.ColorBanner, banner) + "\n" + desc)
}

func (s *Session) prompt() error {
	_, err := s.conn.Write([]byte(prompt))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(display.Wrap(msg, s.width) + "\n"))
	return err
}
