package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/cli/formatter"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trackerHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func trackerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newAddEntryForm creates a themed form collecting the fields of a manual entry.
func newAddEntryForm(task, durText, notes, date *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("code review").
				Value(task).
				Validate(validateRequiredText("Task")),
			huh.NewInput().
				Title("Duration").
				Placeholder("2h 30m").
				Value(durText).
				Validate(validateDurationText),
			huh.NewInput().
				Title("Notes (optional)").
				Value(notes),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, blank for today)").
				Placeholder(todayDate()).
				Value(date).
				Validate(validateOptionalDate),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

// validateRequiredText rejects empty or whitespace-only input.
func validateRequiredText(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// validateDurationText accepts anything the duration grammar parses to a
// positive number of seconds.
func validateDurationText(s string) error {
	seconds, ok := duration.Parse(s)
	if !ok || seconds <= 0 {
		return fmt.Errorf("use formats like '2h 30m', '90m', or '1.5h'")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(duration.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func todayDate() string {
	return time.Now().Format(duration.DateLayout)
}
