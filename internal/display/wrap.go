package display

import (
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the column width used when a session does not pick one.
const DefaultWidth = 80

// Wrap word-wraps text to width columns, preserving ANSI escape sequences.
// A width of zero or less means DefaultWidth.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}
