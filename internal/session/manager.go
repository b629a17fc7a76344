package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/pixil98/go-zuul/internal/commands"
	"github.com/pixil98/go-zuul/internal/game"
)

// Recorder tracks how many sessions are being played.
type Recorder interface {
	SessionStarted()
	SessionEnded()
}

// Manager starts a fresh game for every connection. Sessions never share a
// world.
type Manager struct {
	layout     *game.Layout
	cmdHandler *commands.Handler
	recorder   Recorder
	seed       int64

	mu     sync.Mutex
	active map[string]*Session
}

func NewManager(layout *game.Layout, cmdHandler *commands.Handler, opts ...ManagerOpt) *Manager {
	m := &Manager{
		layout:     layout,
		cmdHandler: cmdHandler,
		active:     map[string]*Session{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RunSession builds a new world and plays it over conn until the player
// leaves.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter, opts ...SessionOpt) error {
	world, err := m.layout.NewWorld(rand.NewSource(m.nextSeed()))
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	s := New(conn, world, m.cmdHandler, opts...)

	m.add(s)
	defer m.remove(s)

	slog.InfoContext(ctx, "session started", "session", s.Id())
	err = s.Play(ctx)
	slog.InfoContext(ctx, "session ended", "session", s.Id())

	return err
}

// Active returns the number of sessions being played.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

func (m *Manager) nextSeed() int64 {
	if m.seed != 0 {
		return m.seed
	}
	return time.Now().UnixNano()
}

func (m *Manager) add(s *Session) {
	m.mu.Lock()
	m.active[s.Id()] = s
	m.mu.Unlock()

	if m.recorder != nil {
		m.recorder.SessionStarted()
	}
}

func (m *Manager) remove(s *Session) {
	m.mu.Lock()
	delete(m.active, s.Id())
	m.mu.Unlock()

	if m.recorder != nil {
		m.recorder.SessionEnded()
	}
}
