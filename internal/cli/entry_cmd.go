package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aavinothkumartt/TimeTracker/internal/cli/formatter"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		task    string
		durText string
		notes   string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual time entry",
		Long:  "Add a manual time entry. With no flags in a terminal, an interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if task == "" && durText == "" && app.interactive() {
				form := newAddEntryForm(&task, &durText, &notes, &date)
				if err := form.Run(); err != nil {
					return err
				}
			}

			if date != "" {
				if err := validateOptionalDate(date); err != nil {
					return err
				}
			}

			result, err := app.Entries.Add(ctx, task, durText, notes, date)
			if err != nil {
				return err
			}
			if !result.OK {
				return fmt.Errorf("%s", result.Message)
			}

			fmt.Println(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", "", "Task name")
	cmd.Flags().StringVarP(&durText, "duration", "d", "", "Duration (e.g. '2h 30m', '90m', '1.5h')")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Optional notes")
	cmd.Flags().StringVar(&date, "date", "", "Date for the entry (YYYY-MM-DD, default today)")

	return cmd
}

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "List and manage manual entries",
	}

	cmd.AddCommand(
		newEntryListCmd(app),
		newEntryUpdateCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manual entries for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			entries, err := app.Entries.ListForDate(ctx, day)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("No manual entries on %s.\n", day)
				return nil
			}

			headers := []string{"ID", "TASK", "DURATION", "NOTES"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(e.ID, 10),
					e.TaskName,
					duration.Format(e.Duration),
					formatter.Dim(formatter.TruncNote(e.Notes)),
				})
			}

			fmt.Print(formatter.RenderBox("Entries "+day, formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to list (YYYY-MM-DD, default today)")

	return cmd
}

func newEntryUpdateCmd(app *App) *cobra.Command {
	var (
		task    string
		durText string
		notes   string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a manual entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			var taskPtr, durPtr, notesPtr *string
			if cmd.Flags().Changed("task") {
				taskPtr = &task
			}
			if cmd.Flags().Changed("duration") {
				durPtr = &durText
			}
			if cmd.Flags().Changed("notes") {
				notesPtr = &notes
			}
			if taskPtr == nil && durPtr == nil && notesPtr == nil {
				return fmt.Errorf("nothing to update: pass --task, --duration or --notes")
			}

			if err := app.Entries.Update(context.Background(), id, taskPtr, durPtr, notesPtr); err != nil {
				return err
			}
			fmt.Printf("Updated entry #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", "", "New task name")
	cmd.Flags().StringVarP(&durText, "duration", "d", "", "New duration (e.g. '45m')")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "New notes")

	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a manual entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}
			if err := app.Entries.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed entry #%d\n", id)
			return nil
		},
	}
}
