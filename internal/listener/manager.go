package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-zuul/internal/session"
)

// SessionRunner plays a game over a connection.
type SessionRunner interface {
	RunSession(ctx context.Context, conn io.ReadWriter, opts ...session.SessionOpt) error
}

type ConnectionManager struct {
	sessions SessionRunner
}

func NewConnectionManager(sessions SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		sessions: sessions,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.sessions.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "game session", "error", err)
	}
}
