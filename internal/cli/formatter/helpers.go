package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// ClockTime renders a timestamp as a local wall-clock time ("09:41:03").
func ClockTime(t time.Time) string {
	return t.Format("15:04:05")
}

// TruncNote shortens free text for table cells. Truncation counts runes so
// multi-byte text is never split mid-character.
func TruncNote(s string) string {
	runes := []rune(s)
	if len(runes) > 40 {
		return string(runes[:37]) + "..."
	}
	return s
}
