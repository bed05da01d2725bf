package domain

import "time"

// ReminderJob is a fixed broadcast trigger: a time of day, an optional
// weekday restriction, and the message to fan out.
type ReminderJob struct {
	Name    string
	Hour    int
	Minute  int
	Weekday *time.Weekday // nil means every day
	Message string
}

// Next returns the first trigger time strictly after now.
func (j ReminderJob) Next(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), j.Hour, j.Minute, 0, 0, now.Location())

	if j.Weekday == nil {
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next
	}

	days := (int(*j.Weekday) - int(next.Weekday()) + 7) % 7
	next = next.AddDate(0, 0, days)
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
