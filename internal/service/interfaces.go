package service

import (
	"context"

	"github.com/aavinothkumartt/TimeTracker/internal/domain"
)

// SessionService is the session engine. At most one session is active at a
// time; the active-session reference is re-derived from storage when the
// service is constructed, so it survives process restarts.
type SessionService interface {
	// IsActive reports whether a session is currently running.
	IsActive() bool
	// Start begins a new session and returns its id.
	// Returns ErrSessionActive if one is already running.
	Start(ctx context.Context, taskName string) (int64, error)
	// Stop finalizes the active session, setting its end time and duration,
	// and returns the finished session. Returns ErrNoActiveSession if none
	// is running.
	Stop(ctx context.Context) (*domain.WorkSession, error)
	// Cancel discards the active session without recording any duration.
	Cancel(ctx context.Context) error
	// Current returns the active session, or ErrNoActiveSession.
	Current(ctx context.Context) (*domain.WorkSession, error)
	// CurrentDuration returns the live elapsed seconds of the active
	// session, or 0 if none is running.
	CurrentDuration(ctx context.Context) (int, error)

	ListForDate(ctx context.Context, date string) ([]*domain.WorkSession, error)
	// Update edits a stored session directly, bypassing engine state.
	Update(ctx context.Context, id int64, taskName, notes *string) error
	// Delete removes a session. Deleting the active session clears the
	// engine's current reference.
	Delete(ctx context.Context, id int64) error
}

// AddEntryResult reports the outcome of adding a manual entry. Validation
// failures come back as OK=false with a user-facing message, not as errors.
type AddEntryResult struct {
	OK      bool
	Message string
	EntryID int64
}

type EntryService interface {
	// Add validates and persists a manual entry. durationText accepts the
	// duration grammar ("2h 30m", "90m", "1.5h"); date defaults to today
	// when empty.
	Add(ctx context.Context, taskName, durationText, notes, date string) (*AddEntryResult, error)
	// Update edits an entry in place. Nil fields are left unchanged; a
	// provided durationText that fails to parse returns ErrInvalidDuration.
	Update(ctx context.Context, id int64, taskName, durationText, notes *string) error
	Delete(ctx context.Context, id int64) error
	ListForDate(ctx context.Context, date string) ([]*domain.ManualEntry, error)
}

type SummaryService interface {
	// DailySummary aggregates finished sessions and manual entries for the
	// given YYYY-MM-DD date (today when empty).
	DailySummary(ctx context.Context, date string) (*domain.DailySummary, error)
}
