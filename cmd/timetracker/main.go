package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aavinothkumartt/TimeTracker/internal/cli"
	"github.com/aavinothkumartt/TimeTracker/internal/db"
	"github.com/aavinothkumartt/TimeTracker/internal/repository"
	"github.com/aavinothkumartt/TimeTracker/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.timetracker/timetracker.db
	dbPath := os.Getenv("TIMETRACKER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".timetracker", "timetracker.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional structured logging of use-case events.
	var observers []service.UseCaseObserver
	if os.Getenv("TIMETRACKER_LOG_OPS") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services; session construction recovers engine state from storage.
	sessionSvc, err := service.NewSessionService(context.Background(), sessionRepo, uow, observers...)
	if err != nil {
		return fmt.Errorf("recovering session state: %w", err)
	}

	app := &cli.App{
		Sessions: sessionSvc,
		Entries:  service.NewEntryService(entryRepo, observers...),
		Summary:  service.NewSummaryService(sessionRepo, entryRepo),
	}

	// Detect interactive terminal for form-based entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
