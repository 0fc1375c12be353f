package cli

import (
	"github.com/aavinothkumartt/TimeTracker/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Entries  service.EntryService
	Summary  service.SummaryService

	// IsInteractive reports whether stdin is an interactive terminal.
	// Commands use it to decide between prompting and requiring flags.
	IsInteractive func() bool
}

// interactive is a nil-safe wrapper around IsInteractive.
func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timetracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timetracker",
		Short: "Track work time with timer sessions and manual entries",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newCancelCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newAddCmd(app),
		newSessionsCmd(app),
		newEntryCmd(app),
		newSummaryCmd(app),
	)

	return root
}
