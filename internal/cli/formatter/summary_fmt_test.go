package formatter

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDailySummary(t *testing.T) {
	d := domain.NewDailySummary("2026-08-30")
	d.AddSession(mustSession("A", 2700))
	d.AddEntry(&domain.ManualEntry{TaskName: "B", Duration: 1200})

	out := FormatDailySummary(d)
	assert.Contains(t, out, "Total Work Time:")
	assert.Contains(t, out, "1h 5m")
	assert.Contains(t, out, "2 (1 sessions, 1 manual)")
	assert.Contains(t, out, "Breakdown by Task:")

	// Descending order: A (45m) before B (20m).
	assert.Less(t, strings.Index(out, "A: "), strings.Index(out, "B: "))
	assert.Contains(t, out, "45m")
	assert.Contains(t, out, "20m")
}

func TestFormatDailySummary_NoBreakdownWhenEmpty(t *testing.T) {
	d := domain.NewDailySummary("2026-08-30")

	out := FormatDailySummary(d)
	assert.Contains(t, out, "0s")
	assert.NotContains(t, out, "Breakdown by Task:")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TASK"},
		[][]string{
			{"1", "Reading"},
			{"12", "Writing docs"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, and two data rows")
	assert.Contains(t, lines[2], "Reading")
	assert.Contains(t, lines[3], "Writing docs")
}

func TestTruncNote(t *testing.T) {
	assert.Equal(t, "short", TruncNote("short"))

	long := strings.Repeat("x", 50)
	got := TruncNote(long)
	assert.Len(t, got, 40)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncNote_MultiByteRunes(t *testing.T) {
	long := strings.Repeat("ü", 50)
	got := TruncNote(long)
	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.Equal(t, strings.Repeat("ü", 37)+"...", got)

	// 40 runes exactly: no truncation even though byte length exceeds 40.
	exact := strings.Repeat("日", 40)
	assert.Equal(t, exact, TruncNote(exact))
}

func mustSession(task string, seconds int) *domain.WorkSession {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	end := start.Add(time.Duration(seconds) * time.Second)
	return &domain.WorkSession{TaskName: task, StartTime: start, EndTime: &end, Duration: &seconds}
}
