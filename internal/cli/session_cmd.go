package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aavinothkumartt/TimeTracker/internal/cli/formatter"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/aavinothkumartt/TimeTracker/internal/service"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start [task name]",
		Short: "Start a work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task := strings.TrimSpace(strings.Join(args, " "))

			id, err := app.Sessions.Start(ctx, task)
			if errors.Is(err, service.ErrSessionActive) {
				current, currErr := app.Sessions.Current(ctx)
				if currErr == nil && current.TaskName != "" {
					return fmt.Errorf("a session is already active (%s); stop or cancel it first", current.TaskName)
				}
				return fmt.Errorf("a session is already active; stop or cancel it first")
			}
			if err != nil {
				return err
			}

			label := "timer"
			if task != "" {
				label = fmt.Sprintf("'%s'", task)
			}
			fmt.Printf("Started session #%d for %s\n", id, label)
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sess, err := app.Sessions.Stop(ctx)
			if errors.Is(err, service.ErrNoActiveSession) {
				return fmt.Errorf("no session is running")
			}
			if err != nil {
				return err
			}

			elapsed := duration.Format(*sess.Duration)
			if sess.TaskName != "" {
				fmt.Printf("Stopped session #%d: %s (%s)\n", sess.ID, elapsed, sess.TaskName)
			} else {
				fmt.Printf("Stopped session #%d: %s\n", sess.ID, elapsed)
			}

			summary, err := app.Summary.DailySummary(ctx, "")
			if err != nil {
				return err
			}
			fmt.Printf("Today's total: %s\n", duration.Format(summary.TotalDuration))
			return nil
		},
	}
}

func newCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Discard the active session without saving",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Sessions.Cancel(context.Background())
			if errors.Is(err, service.ErrNoActiveSession) {
				return fmt.Errorf("no session is running")
			}
			if err != nil {
				return err
			}
			fmt.Println("Session cancelled; nothing was recorded.")
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session and today's total",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var lines []string
			current, err := app.Sessions.Current(ctx)
			switch {
			case errors.Is(err, service.ErrNoActiveSession):
				lines = append(lines, formatter.ActiveIndicator(false))
			case err != nil:
				return err
			default:
				seconds, durErr := app.Sessions.CurrentDuration(ctx)
				if durErr != nil {
					return durErr
				}
				lines = append(lines, formatter.ActiveIndicator(true))
				if current.TaskName != "" {
					lines = append(lines, fmt.Sprintf("%s %s", formatter.Bold("Task:"), current.TaskName))
				}
				lines = append(lines,
					fmt.Sprintf("%s %s", formatter.Bold("Started:"), formatter.ClockTime(current.StartTime)),
					fmt.Sprintf("%s %s", formatter.Bold("Elapsed:"), duration.FormatClock(seconds)),
				)
			}

			summary, err := app.Summary.DailySummary(ctx, "")
			if err != nil {
				return err
			}
			lines = append(lines, fmt.Sprintf("%s %s", formatter.Bold("Today:"), duration.Format(summary.TotalDuration)))

			fmt.Print(formatter.RenderBox("Status", strings.Join(lines, "\n")))
			fmt.Println()
			return nil
		},
	}
}

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List and manage recorded sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsUpdateCmd(app),
		newSessionsRemoveCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			sessions, err := app.Sessions.ListForDate(ctx, day)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Printf("No sessions on %s.\n", day)
				return nil
			}

			headers := []string{"ID", "TASK", "STARTED", "DURATION", "NOTES"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				dur := formatter.Dim("running")
				if s.Duration != nil {
					dur = duration.Format(*s.Duration)
				}
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					s.TaskName,
					formatter.ClockTime(s.StartTime),
					dur,
					formatter.Dim(formatter.TruncNote(s.Notes)),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions "+day, formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to list (YYYY-MM-DD, default today)")

	return cmd
}

func newSessionsUpdateCmd(app *App) *cobra.Command {
	var (
		task  string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}

			var taskPtr, notesPtr *string
			if cmd.Flags().Changed("task") {
				taskPtr = &task
			}
			if cmd.Flags().Changed("notes") {
				notesPtr = &notes
			}
			if taskPtr == nil && notesPtr == nil {
				return fmt.Errorf("nothing to update: pass --task or --notes")
			}

			if err := app.Sessions.Update(context.Background(), id, taskPtr, notesPtr); err != nil {
				return err
			}
			fmt.Printf("Updated session #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", "", "New task name")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "New notes")

	return cmd
}

func newSessionsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			if err := app.Sessions.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed session #%d\n", id)
			return nil
		},
	}
}

// resolveDate validates an optional YYYY-MM-DD flag, defaulting to today.
func resolveDate(date string) (string, error) {
	if date == "" {
		return todayDate(), nil
	}
	if err := validateOptionalDate(date); err != nil {
		return "", err
	}
	return date, nil
}
