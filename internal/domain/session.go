package domain

import "time"

// WorkSession is a timer-based unit of tracked work. EndTime and Duration are
// nil while the session is running; both are set together when it is stopped.
type WorkSession struct {
	ID        int64
	StartTime time.Time
	EndTime   *time.Time
	Duration  *int // seconds, derived as end - start
	TaskName  string
	Notes     string
	CreatedAt time.Time
}

// IsActive reports whether the session has not been stopped yet.
func (s *WorkSession) IsActive() bool {
	return s.EndTime == nil
}

// CurrentDuration returns the session's duration in whole seconds as of now.
// For a finished session this is the stored duration; for a running session
// it is recomputed live from the start time.
func (s *WorkSession) CurrentDuration(now time.Time) int {
	if s.EndTime != nil {
		if s.Duration != nil {
			return *s.Duration
		}
		return 0
	}
	return int(now.Sub(s.StartTime).Seconds())
}
