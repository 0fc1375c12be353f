package service

import (
	"context"
	"testing"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/aavinothkumartt/TimeTracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAdd_Success(t *testing.T) {
	_, entryRepo, _ := setupRepos(t)
	svc := NewEntryService(entryRepo)
	ctx := context.Background()

	res, err := svc.Add(ctx, "Reading", "2h 30m", "", "")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "Added 2h 30m for 'Reading'", res.Message)
	assert.Positive(t, res.EntryID)

	entry, err := entryRepo.GetByID(ctx, res.EntryID)
	require.NoError(t, err)
	assert.Equal(t, 9000, entry.Duration)
	assert.Equal(t, time.Now().Format(duration.DateLayout), entry.Date, "date defaults to today")
}

func TestEntryAdd_TrimsStoredTaskNameOnly(t *testing.T) {
	_, entryRepo, _ := setupRepos(t)
	svc := NewEntryService(entryRepo)

	res, err := svc.Add(context.Background(), "  Reading  ", "90m", "", "")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "Added 1h 30m for '  Reading  '", res.Message,
		"message echoes the task name as given")

	entry, err := entryRepo.GetByID(context.Background(), res.EntryID)
	require.NoError(t, err)
	assert.Equal(t, "Reading", entry.TaskName)
}

func TestEntryAdd_ValidationFailures(t *testing.T) {
	_, entryRepo, _ := setupRepos(t)
	svc := NewEntryService(entryRepo)
	ctx := context.Background()

	tests := []struct {
		name     string
		task     string
		duration string
		message  string
	}{
		{"garbage duration", "Reading", "garbage", msgInvalidDuration},
		{"empty duration", "Reading", "", msgInvalidDuration},
		{"zero duration", "Reading", "0m", msgInvalidDuration},
		{"empty task", "", "2h", msgEmptyTaskName},
		{"whitespace task", "   ", "2h", msgEmptyTaskName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Add(ctx, tt.task, tt.duration, "", "")
			require.NoError(t, err, "validation failures are results, not errors")
			assert.False(t, res.OK)
			assert.Equal(t, tt.message, res.Message)
			assert.Zero(t, res.EntryID)
		})
	}

	// Nothing was persisted.
	entries, err := entryRepo.ListForDate(ctx, time.Now().Format(duration.DateLayout))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryAdd_ExplicitDate(t *testing.T) {
	_, entryRepo, _ := setupRepos(t)
	svc := NewEntryService(entryRepo)
	ctx := context.Background()

	res, err := svc.Add(ctx, "Reading", "1.5h", "notes here", "2026-08-15")
	require.NoError(t, err)
	require.True(t, res.OK)

	list, err := entryRepo.ListForDate(ctx, "2026-08-15")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5400, list[0].Duration)
	assert.Equal(t, "notes here", list[0].Notes)
}

func TestEntryUpdate_RejectsBadDuration(t *testing.T) {
	_, entryRepo, _ := setupRepos(t)
	svc := NewEntryService(entryRepo)
	ctx := context.Background()

	res, err := svc.Add(ctx, "Reading", "1h", "", "")
	require.NoError(t, err)
	require.True(t, res.OK)

	bad := "nonsense"
	err = svc.Update(ctx, res.EntryID, nil, &bad, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	entry, err := entryRepo.GetByID(ctx, res.EntryID)
	require.NoError(t, err)
	assert.Equal(t, 3600, entry.Duration, "failed update leaves the entry unchanged")
}

func TestEntryUpdate_ChangesDuration(t *testing.T) {
	_, entryRepo, _ := setupRepos(t)
	svc := NewEntryService(entryRepo)
	ctx := context.Background()

	res, err := svc.Add(ctx, "Reading", "1h", "", "")
	require.NoError(t, err)

	text := "45m"
	require.NoError(t, svc.Update(ctx, res.EntryID, nil, &text, nil))

	entry, err := entryRepo.GetByID(ctx, res.EntryID)
	require.NoError(t, err)
	assert.Equal(t, 2700, entry.Duration)
}

func TestEntryDelete(t *testing.T) {
	_, entryRepo, _ := setupRepos(t)
	svc := NewEntryService(entryRepo)
	ctx := context.Background()

	res, err := svc.Add(ctx, "Reading", "1h", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, res.EntryID))

	_, err = entryRepo.GetByID(ctx, res.EntryID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
