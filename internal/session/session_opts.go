package session

import "github.com/pixil98/go-zuul/internal/display"

type SessionOpt func(*Session)

// WithColor styles banners and rejections with ANSI colors.
func WithColor(enabled bool) SessionOpt {
	return func(s *Session) {
		s.painter = display.NewPainter(enabled)
	}
}

// WithWidth sets the column width output is wrapped to.
func WithWidth(width int) SessionOpt {
	return func(s *Session) {
		s.width = width
	}
}

// WithId replaces the generated session id.
func WithId(id string) SessionOpt {
	return func(s *Session) {
		s.id = id
	}
}
