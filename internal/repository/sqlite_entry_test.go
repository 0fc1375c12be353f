package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/aavinothkumartt/TimeTracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryTestSetup(t *testing.T) *SQLiteEntryRepo {
	t.Helper()
	return NewSQLiteEntryRepo(testutil.NewTestDB(t))
}

func TestEntryRepo_CreateAndGetByID(t *testing.T) {
	repo := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("Reading", 5400, testutil.WithEntryNotes("two chapters"))
	require.NoError(t, repo.Create(ctx, entry))
	assert.Positive(t, entry.ID)

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reading", fetched.TaskName)
	assert.Equal(t, 5400, fetched.Duration)
	assert.Equal(t, "two chapters", fetched.Notes)
	assert.Equal(t, entry.Date, fetched.Date)
}

func TestEntryRepo_CreateDefaultsToToday(t *testing.T) {
	repo := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("Reading", 600, testutil.WithEntryDate(""))
	require.NoError(t, repo.Create(ctx, entry))

	assert.Equal(t, time.Now().Format(duration.DateLayout), entry.Date)
}

func TestEntryRepo_GetByID_NotFound(t *testing.T) {
	repo := entryTestSetup(t)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_ListForDate(t *testing.T) {
	repo := entryTestSetup(t)
	ctx := context.Background()

	e1 := testutil.NewTestEntry("A", 600, testutil.WithEntryDate("2026-08-30"))
	e2 := testutil.NewTestEntry("B", 900, testutil.WithEntryDate("2026-08-30"))
	other := testutil.NewTestEntry("C", 300, testutil.WithEntryDate("2026-08-29"))
	require.NoError(t, repo.Create(ctx, e1))
	require.NoError(t, repo.Create(ctx, e2))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListForDate(ctx, "2026-08-30")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, e1.ID, list[0].ID)
	assert.Equal(t, e2.ID, list[1].ID)
}

func TestEntryRepo_Update_PartialFields(t *testing.T) {
	repo := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("Reading", 600)
	require.NoError(t, repo.Create(ctx, entry))

	seconds := 900
	require.NoError(t, repo.Update(ctx, entry.ID, nil, &seconds, nil))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reading", fetched.TaskName)
	assert.Equal(t, 900, fetched.Duration)
}

func TestEntryRepo_Update_NotFound(t *testing.T) {
	repo := entryTestSetup(t)

	name := "X"
	err := repo.Update(context.Background(), 42, &name, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_Delete(t *testing.T) {
	repo := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("Reading", 600)
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.Delete(ctx, entry.ID))

	_, err := repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, entry.ID), ErrNotFound)
}
