package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. Callers
// check it with errors.Is; implementations wrap it with the entity name.
var ErrNotFound = errors.New("not found")

// SessionRepo is the persistence gateway for timed work sessions. Ids are
// assigned by the store on Create. "Open" means end_time is not yet set.
type SessionRepo interface {
	// Create inserts a new session and assigns s.ID.
	Create(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, id int64) (*domain.WorkSession, error)
	// GetActive returns the most recently started open session, or ErrNotFound.
	GetActive(ctx context.Context) (*domain.WorkSession, error)
	// ListActive returns all open sessions, most recently started first.
	ListActive(ctx context.Context) ([]*domain.WorkSession, error)
	// ListForDate returns sessions whose start time falls on the given
	// YYYY-MM-DD date, ordered by start time.
	ListForDate(ctx context.Context, date string) ([]*domain.WorkSession, error)
	// End finalizes an open session, setting end time and duration together.
	// Returns ErrNotFound if the session does not exist or is already ended.
	End(ctx context.Context, id int64, endTime time.Time, durationSeconds int) error
	// Update modifies task name and/or notes. Nil fields are left unchanged.
	Update(ctx context.Context, id int64, taskName, notes *string) error
	Delete(ctx context.Context, id int64) error
}

// EntryRepo is the persistence gateway for manual time entries.
type EntryRepo interface {
	// Create inserts a new entry and assigns e.ID.
	Create(ctx context.Context, e *domain.ManualEntry) error
	GetByID(ctx context.Context, id int64) (*domain.ManualEntry, error)
	// ListForDate returns entries for the given YYYY-MM-DD date, ordered by
	// creation time.
	ListForDate(ctx context.Context, date string) ([]*domain.ManualEntry, error)
	// Update modifies task name, duration, and/or notes. Nil fields are left
	// unchanged.
	Update(ctx context.Context, id int64, taskName *string, durationSeconds *int, notes *string) error
	Delete(ctx context.Context, id int64) error
}
