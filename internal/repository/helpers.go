package repository

import (
	"database/sql"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/duration"
)

// parseNullableTime parses a sql.NullString into a *time.Time using the
// repo-wide local datetime layout. Returns nil if the value is NULL, empty,
// or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.ParseInLocation(duration.DateTimeLayout, s.String, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableTimeToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(duration.DateTimeLayout)
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nowLocal returns the current local time formatted at second precision.
func nowLocal() string {
	return time.Now().Format(duration.DateTimeLayout)
}
