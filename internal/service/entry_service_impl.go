package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/aavinothkumartt/TimeTracker/internal/repository"
)

// User-facing validation messages for manual entries.
const (
	msgInvalidDuration = "Invalid duration format. Use formats like '2h 30m', '90m', or '1.5h'."
	msgEmptyTaskName   = "Task name cannot be empty."
)

type entryService struct {
	entries  repository.EntryRepo
	now      func() time.Time
	observer UseCaseObserver
}

// NewEntryService creates the manual-entry service.
func NewEntryService(entries repository.EntryRepo, observers ...UseCaseObserver) EntryService {
	return &entryService{
		entries:  entries,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *entryService) Add(ctx context.Context, taskName, durationText, notes, date string) (*AddEntryResult, error) {
	seconds, ok := duration.Parse(durationText)
	if !ok || seconds <= 0 {
		return &AddEntryResult{Message: msgInvalidDuration}, nil
	}

	task := strings.TrimSpace(taskName)
	if task == "" {
		return &AddEntryResult{Message: msgEmptyTaskName}, nil
	}

	entry := &domain.ManualEntry{
		Date:     date,
		Duration: seconds,
		TaskName: task,
		Notes:    notes,
	}

	started := s.now()
	err := s.entries.Create(ctx, entry)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "entry_add",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"task": task, "seconds": seconds},
		StartedAt: started,
	})
	if err != nil {
		return nil, err
	}

	// The message echoes the caller's task name as given; only the stored
	// value is trimmed.
	return &AddEntryResult{
		OK:      true,
		Message: fmt.Sprintf("Added %s for '%s'", duration.Format(seconds), taskName),
		EntryID: entry.ID,
	}, nil
}

func (s *entryService) Update(ctx context.Context, id int64, taskName, durationText, notes *string) error {
	var seconds *int
	if durationText != nil {
		parsed, ok := duration.Parse(*durationText)
		if !ok || parsed <= 0 {
			return ErrInvalidDuration
		}
		seconds = &parsed
	}
	return s.entries.Update(ctx, id, taskName, seconds, notes)
}

func (s *entryService) Delete(ctx context.Context, id int64) error {
	return s.entries.Delete(ctx, id)
}

func (s *entryService) ListForDate(ctx context.Context, date string) ([]*domain.ManualEntry, error) {
	if date == "" {
		date = s.now().Format(duration.DateLayout)
	}
	return s.entries.ListForDate(ctx, date)
}
