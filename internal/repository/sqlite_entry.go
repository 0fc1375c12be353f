package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/db"
	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
)

// entryColumns is the canonical SELECT column list for manual_entries.
const entryColumns = `id, date, duration, task_name, notes, created_at`

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.ManualEntry) error {
	if e.Date == "" {
		e.Date = time.Now().Format(duration.DateLayout)
	}
	query := `INSERT INTO manual_entries (date, duration, task_name, notes, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, e.Date, e.Duration, e.TaskName, e.Notes, nowLocal())
	if err != nil {
		return fmt.Errorf("inserting manual entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading manual entry id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id int64) (*domain.ManualEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM manual_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var e domain.ManualEntry
	var createdStr string
	err := row.Scan(&e.ID, &e.Date, &e.Duration, &e.TaskName, &e.Notes, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("manual entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning manual entry: %w", err)
	}
	e.CreatedAt, err = time.ParseInLocation(duration.DateTimeLayout, createdStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}

func (r *SQLiteEntryRepo) ListForDate(ctx context.Context, date string) ([]*domain.ManualEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM manual_entries
		WHERE date = ?
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing entries for date: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ManualEntry
	for rows.Next() {
		var e domain.ManualEntry
		var createdStr string
		if err := rows.Scan(&e.ID, &e.Date, &e.Duration, &e.TaskName, &e.Notes, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}
		e.CreatedAt, err = time.ParseInLocation(duration.DateTimeLayout, createdStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, id int64, taskName *string, durationSeconds *int, notes *string) error {
	query := `UPDATE manual_entries
		SET task_name = COALESCE(?, task_name),
		    duration  = COALESCE(?, duration),
		    notes     = COALESCE(?, notes)
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, taskName, nullableIntToValue(durationSeconds), notes, id)
	if err != nil {
		return fmt.Errorf("updating manual entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("manual entry %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM manual_entries WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting manual entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting manual entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("manual entry: %w", ErrNotFound)
	}
	return nil
}
