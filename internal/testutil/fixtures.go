package testutil

import (
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
)

// Session options
type SessionOption func(*domain.WorkSession)

func WithStartTime(t time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.StartTime = t.Truncate(time.Second)
	}
}

func WithSessionNotes(notes string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Notes = notes
	}
}

// Finished marks the session as ended the given number of seconds after it
// started.
func Finished(seconds int) SessionOption {
	return func(s *domain.WorkSession) {
		end := s.StartTime.Add(time.Duration(seconds) * time.Second)
		s.EndTime = &end
		s.Duration = &seconds
	}
}

// NewTestSession builds an open session started one hour ago. Apply Finished
// to produce a completed one.
func NewTestSession(taskName string, opts ...SessionOption) *domain.WorkSession {
	s := &domain.WorkSession{
		StartTime: time.Now().Add(-time.Hour).Truncate(time.Second),
		TaskName:  taskName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entry options
type EntryOption func(*domain.ManualEntry)

func WithEntryDate(date string) EntryOption {
	return func(e *domain.ManualEntry) {
		e.Date = date
	}
}

func WithEntryNotes(notes string) EntryOption {
	return func(e *domain.ManualEntry) {
		e.Notes = notes
	}
}

// NewTestEntry builds a manual entry dated today.
func NewTestEntry(taskName string, seconds int, opts ...EntryOption) *domain.ManualEntry {
	e := &domain.ManualEntry{
		Date:     time.Now().Format(duration.DateLayout),
		Duration: seconds,
		TaskName: taskName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
