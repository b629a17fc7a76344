package display

import (
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

var (
	ColorBanner   = color.Style{color.FgYellow, color.OpBold}
	ColorDenied   = color.Style{color.FgRed, color.OpBold}
	ColorFarewell = color.Style{color.FgGray}
)

// Painter applies color styles when enabled and passes text through
// untouched otherwise.
type Painter struct {
	enabled bool
}

func NewPainter(enabled bool) *Painter {
	return &Painter{enabled: enabled}
}

// Paint renders text in style.
func (p *Painter) Paint(style color.Style, text string) string {
	if p == nil || !p.enabled || text == "" {
		return text
	}
	return style.Sprint(text)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
