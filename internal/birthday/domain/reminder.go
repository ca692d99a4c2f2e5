package domain

import (
	"time"

	"github.com/louisbranch/birthdaybot/internal/birthday/storage"
)

// NotificationKind identifies one reminder window.
type NotificationKind string

const (
	// KindUpcoming fires when the occurrence is tomorrow.
	KindUpcoming NotificationKind = "upcoming"
	// KindToday fires on the occurrence day itself.
	KindToday NotificationKind = "today"
)

// Notification is one due reminder for a stored birthday.
type Notification struct {
	Record     storage.BirthdayRecord
	Kind       NotificationKind
	Occurrence time.Time
}

// RecordError reports one stored record the engine could not evaluate.
type RecordError struct {
	Record storage.BirthdayRecord
	Err    error
}

// Evaluate computes the reminders due on the given day.
//
// Evaluate is pure: it performs no I/O, keeps no already-notified
// state, and returns the same output for the same input however often
// it runs. The caller owns the once-per-day trigger contract. The
// occurrence is this year's date only; occurrences already past fire
// nothing and are picked up naturally next year as the calendar
// advances. Malformed stored dates are reported per record and never
// abort the rest of the run.
func Evaluate(today time.Time, records []storage.BirthdayRecord) ([]Notification, []RecordError) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	var due []Notification
	var failed []RecordError
	for _, record := range records {
		date, err := ParseDate(record.Date)
		if err != nil {
			failed = append(failed, RecordError{Record: record, Err: err})
			continue
		}
		occurrence := date.Occurrence(today.Year())
		switch {
		case occurrence.Equal(tomorrow):
			due = append(due, Notification{Record: record, Kind: KindUpcoming, Occurrence: occurrence})
		case occurrence.Equal(today):
			due = append(due, Notification{Record: record, Kind: KindToday, Occurrence: occurrence})
		}
	}
	return due, failed
}
