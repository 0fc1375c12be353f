package domain

import "sort"

// TaskTotal is one row of a daily breakdown: a task label and the seconds
// accumulated against it.
type TaskTotal struct {
	Name     string
	Duration int
}

// DailySummary aggregates all finished sessions and manual entries for one
// calendar date. It is derived on every query and never persisted.
type DailySummary struct {
	Date             string
	TotalDuration    int
	SessionCount     int
	ManualEntryCount int

	// tasks accumulates per-label totals in encounter order. Breakdown
	// sorts a copy at render time.
	tasks []TaskTotal
}

// NewDailySummary returns an empty summary for the given date.
func NewDailySummary(date string) *DailySummary {
	return &DailySummary{Date: date}
}

// AddSession folds a session into the summary. Sessions without a stored
// duration (still running) are skipped entirely.
func (d *DailySummary) AddSession(s *WorkSession) {
	if s.Duration == nil {
		return
	}
	d.TotalDuration += *s.Duration
	d.SessionCount++
	if s.TaskName != "" {
		d.addTask(s.TaskName, *s.Duration)
	}
}

// AddEntry folds a manual entry into the summary.
func (d *DailySummary) AddEntry(e *ManualEntry) {
	d.TotalDuration += e.Duration
	d.ManualEntryCount++
	if e.TaskName != "" {
		d.addTask(e.TaskName, e.Duration)
	}
}

// addTask accumulates into an existing bucket on exact label match, or
// appends a new one. Labels are not trimmed or case-folded.
func (d *DailySummary) addTask(name string, seconds int) {
	for i := range d.tasks {
		if d.tasks[i].Name == name {
			d.tasks[i].Duration += seconds
			return
		}
	}
	d.tasks = append(d.tasks, TaskTotal{Name: name, Duration: seconds})
}

// TotalItems returns the combined count of sessions and manual entries.
func (d *DailySummary) TotalItems() int {
	return d.SessionCount + d.ManualEntryCount
}

// Breakdown returns the per-task totals sorted by descending duration.
// Ties keep encounter order.
func (d *DailySummary) Breakdown() []TaskTotal {
	out := make([]TaskTotal, len(d.tasks))
	copy(out, d.tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Duration > out[j].Duration
	})
	return out
}
