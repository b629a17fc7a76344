package console

import (
	"context"
	"io"

	"github.com/pixil98/go-zuul/internal/listener"
	"github.com/pixil98/go-zuul/internal/session"
)

// Console plays a single game on the process's standard streams. Ending the
// game stops the whole process.
type Console struct {
	rw       io.ReadWriter
	sessions listener.SessionRunner
	stop     context.CancelFunc
	color    bool
}

func New(in io.Reader, out io.Writer, sessions listener.SessionRunner, stop context.CancelFunc, color bool) *Console {
	return &Console{
		rw:       &stdio{Reader: in, Writer: out},
		sessions: sessions,
		stop:     stop,
		color:    color,
	}
}

func (c *Console) Start(ctx context.Context) error {
	defer c.stop()
	return c.sessions.RunSession(ctx, c.rw, session.WithColor(c.color))
}

type stdio struct {
	io.Reader
	io.Writer
}
