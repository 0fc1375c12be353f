package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func finishedSession(task string, seconds int) *WorkSession {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	end := start.Add(time.Duration(seconds) * time.Second)
	return &WorkSession{
		StartTime: start,
		EndTime:   &end,
		Duration:  &seconds,
		TaskName:  task,
	}
}

func TestDailySummary_Aggregation(t *testing.T) {
	d := NewDailySummary("2026-08-30")

	d.AddSession(finishedSession("A", 1800))
	d.AddSession(finishedSession("A", 900))
	d.AddEntry(&ManualEntry{Date: "2026-08-30", Duration: 1200, TaskName: "B"})

	assert.Equal(t, 3900, d.TotalDuration)
	assert.Equal(t, 2, d.SessionCount)
	assert.Equal(t, 1, d.ManualEntryCount)
	assert.Equal(t, 3, d.TotalItems())

	breakdown := d.Breakdown()
	assert.Equal(t, []TaskTotal{{"A", 2700}, {"B", 1200}}, breakdown)
}

func TestDailySummary_SkipsActiveSessions(t *testing.T) {
	d := NewDailySummary("2026-08-30")

	active := &WorkSession{
		StartTime: time.Now().Add(-time.Hour),
		TaskName:  "A",
	}
	d.AddSession(active)

	assert.Zero(t, d.TotalDuration)
	assert.Zero(t, d.SessionCount)
	assert.Empty(t, d.Breakdown())
}

func TestDailySummary_UnlabeledCountsTowardTotals(t *testing.T) {
	d := NewDailySummary("2026-08-30")

	d.AddSession(finishedSession("", 600))
	d.AddEntry(&ManualEntry{Duration: 300, TaskName: "B"})

	assert.Equal(t, 900, d.TotalDuration)
	assert.Equal(t, 1, d.SessionCount)
	assert.Equal(t, 1, d.ManualEntryCount)
	// The unlabeled session contributes to totals but not to the breakdown.
	assert.Equal(t, []TaskTotal{{"B", 300}}, d.Breakdown())
}

func TestDailySummary_ExactLabelMatch(t *testing.T) {
	d := NewDailySummary("2026-08-30")

	d.AddSession(finishedSession("reading", 600))
	d.AddSession(finishedSession("Reading", 300))
	d.AddSession(finishedSession("reading ", 120))

	breakdown := d.Breakdown()
	assert.Len(t, breakdown, 3, "labels differing in case or whitespace are distinct")
}

func TestDailySummary_BreakdownTiesKeepEncounterOrder(t *testing.T) {
	d := NewDailySummary("2026-08-30")

	d.AddSession(finishedSession("first", 600))
	d.AddSession(finishedSession("second", 600))
	d.AddSession(finishedSession("third", 900))

	assert.Equal(t, []TaskTotal{{"third", 900}, {"first", 600}, {"second", 600}}, d.Breakdown())
}

func TestWorkSession_CurrentDuration(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)

	active := &WorkSession{StartTime: now.Add(-90 * time.Second)}
	assert.True(t, active.IsActive())
	assert.Equal(t, 90, active.CurrentDuration(now))

	done := finishedSession("A", 1800)
	assert.False(t, done.IsActive())
	// Stored duration wins over wall clock once finished.
	assert.Equal(t, 1800, done.CurrentDuration(now))
}
