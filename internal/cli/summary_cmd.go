package cli

import (
	"context"
	"fmt"

	"github.com/aavinothkumartt/TimeTracker/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the daily summary with a per-task breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			summary, err := app.Summary.DailySummary(context.Background(), day)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderBox("Summary "+day, formatter.FormatDailySummary(summary)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to summarize (YYYY-MM-DD, default today)")

	return cmd
}
