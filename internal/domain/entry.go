package domain

import "time"

// ManualEntry is a duration entered directly by the user without a live
// timer. Created fully formed; Date is a calendar date in YYYY-MM-DD form.
type ManualEntry struct {
	ID        int64
	Date      string
	Duration  int // seconds, always positive
	TaskName  string
	Notes     string
	CreatedAt time.Time
}
