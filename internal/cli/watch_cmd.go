package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/cli/formatter"
	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/aavinothkumartt/TimeTracker/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the active session with a live-updating clock",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}

			program := tea.NewProgram(newWatchModel(app))
			_, err := program.Run()
			return err
		},
	}
}

type watchTickMsg time.Time

func watchTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

type watchKeymap struct {
	Quit key.Binding
}

type watchModel struct {
	app     *App
	keys    watchKeymap
	session *domain.WorkSession
	elapsed int
	err     error
}

func newWatchModel(app *App) watchModel {
	m := watchModel{
		app: app,
		keys: watchKeymap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
	m.refresh()
	return m
}

// refresh polls the session service so the view survives sessions stopped
// from another terminal.
func (m *watchModel) refresh() {
	ctx := context.Background()

	current, err := m.app.Sessions.Current(ctx)
	if errors.Is(err, service.ErrNoActiveSession) {
		m.session = nil
		m.elapsed = 0
		m.err = nil
		return
	}
	if err != nil {
		m.err = err
		return
	}

	seconds, err := m.app.Sessions.CurrentDuration(ctx)
	if err != nil {
		m.err = err
		return
	}
	m.session = current
	m.elapsed = seconds
	m.err = nil
}

func (m watchModel) Init() tea.Cmd {
	return watchTickCmd()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case watchTickMsg:
		m.refresh()
		return m, watchTickCmd()
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.RenderBox("Watch", "error: "+m.err.Error()) + "\n"
	}

	var lines []string
	if m.session == nil {
		lines = append(lines,
			formatter.ActiveIndicator(false),
			formatter.Dim("Start a session with 'timetracker start'."),
		)
	} else {
		lines = append(lines, formatter.ActiveIndicator(true))
		if m.session.TaskName != "" {
			lines = append(lines, fmt.Sprintf("%s %s", formatter.Bold("Task:"), m.session.TaskName))
		}
		lines = append(lines,
			fmt.Sprintf("%s %s", formatter.Bold("Started:"), formatter.ClockTime(m.session.StartTime)),
			"",
			formatter.Header(duration.FormatClock(m.elapsed)),
		)
	}
	lines = append(lines, "", formatter.Dim("q quit"))

	return formatter.RenderBox("Watch", strings.Join(lines, "\n")) + "\n"
}
