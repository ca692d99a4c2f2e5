package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the DD.MM.YYYY wire format used by the admin commands
// and by the persisted date column.
const dateLayout = "02.01.2006"

// ErrInvalidDate indicates text that does not parse as a DD.MM.YYYY
// calendar date.
var ErrInvalidDate = errors.New("invalid birthday date")

// Date is one birthday calendar date. The year is recorded but only
// day and month drive reminder evaluation.
type Date struct {
	Day   int
	Month time.Month
	Year  int
}

// ParseDate parses DD.MM.YYYY text into a Date. Impossible calendar
// dates (31.02, 29.02 outside leap years) are rejected.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Date{
		Day:   parsed.Day(),
		Month: parsed.Month(),
		Year:  parsed.Year(),
	}, nil
}

// String renders the date back in DD.MM.YYYY form, round-tripping the
// parsed input exactly.
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// Occurrence maps the birthday onto the given year. A Feb 29 birthday
// is observed on Feb 28 in non-leap years.
func (d Date) Occurrence(year int) time.Time {
	day := d.Day
	if d.Month == time.February && d.Day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, d.Month, day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC).Day() == 29
}
