// Package outwriter renders run summaries as console tables.
package outwriter

import (
	"os"

	"golang.org/x/term"
)

// OutWriter provides a unified interface for all summary output.
// It encapsulates the table rendering so the core pipeline stays print-free.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// GetMaxTableTitleWidth calculates the maximum width for problem titles in
// table output based on the detected terminal width.
func GetMaxTableTitleWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		// Conservative default for narrow terminals and CI
		termWidth = 80
	}

	// Reserve space for Rank + ID + Difficulty + Score + Tags with borders
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// TruncateTitle shortens a title to fit a table column, appending an ellipsis
// when anything was cut. Width is measured in runes so multibyte titles are
// not split mid-character.
func TruncateTitle(title string, maxWidth int) string {
	runes := []rune(title)
	if len(runes) <= maxWidth {
		return title
	}
	if maxWidth <= 1 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-1]) + "…"
}
