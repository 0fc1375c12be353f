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

// sessionColumns is the canonical SELECT column list for work_sessions.
const sessionColumns = `id, start_time, end_time, duration, task_name, notes, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (start_time, end_time, duration, task_name, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.StartTime.Format(duration.DateTimeLayout),
		nullableTimeToString(s.EndTime),
		nullableIntToValue(s.Duration),
		s.TaskName,
		s.Notes,
		nowLocal(),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading work session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) GetActive(ctx context.Context) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListActive(ctx context.Context) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE end_time IS NULL
		ORDER BY start_time DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing open sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListForDate(ctx context.Context, date string) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE date(start_time) = ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing sessions for date: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) End(ctx context.Context, id int64, endTime time.Time, durationSeconds int) error {
	query := `UPDATE work_sessions SET end_time = ?, duration = ?
		WHERE id = ? AND end_time IS NULL`
	res, err := r.db.ExecContext(ctx, query, endTime.Format(duration.DateTimeLayout), durationSeconds, id)
	if err != nil {
		return fmt.Errorf("ending work session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking ended rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("open work session %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, id int64, taskName, notes *string) error {
	query := `UPDATE work_sessions
		SET task_name = COALESCE(?, task_name),
		    notes     = COALESCE(?, notes)
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, taskName, notes, id)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work session %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM work_sessions WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting work session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting work session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work session: %w", ErrNotFound)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var startStr, createdStr string
	var endStr sql.NullString
	var durationVal sql.NullInt64

	err := row.Scan(&s.ID, &startStr, &endStr, &durationVal, &s.TaskName, &s.Notes, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}

	return r.populateSession(&s, startStr, endStr, durationVal, createdStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.WorkSession, error) {
	var sessions []*domain.WorkSession
	for rows.Next() {
		var s domain.WorkSession
		var startStr, createdStr string
		var endStr sql.NullString
		var durationVal sql.NullInt64

		err := rows.Scan(&s.ID, &startStr, &endStr, &durationVal, &s.TaskName, &s.Notes, &createdStr)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, startStr, endStr, durationVal, createdStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a WorkSession after scanning raw values.
func (r *SQLiteSessionRepo) populateSession(s *domain.WorkSession, startStr string, endStr sql.NullString, durationVal sql.NullInt64, createdStr string) (*domain.WorkSession, error) {
	var parseErr error
	s.StartTime, parseErr = time.ParseInLocation(duration.DateTimeLayout, startStr, time.Local)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	s.EndTime = parseNullableTime(endStr)
	if durationVal.Valid {
		d := int(durationVal.Int64)
		s.Duration = &d
	}
	s.CreatedAt, parseErr = time.ParseInLocation(duration.DateTimeLayout, createdStr, time.Local)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return s, nil
}
