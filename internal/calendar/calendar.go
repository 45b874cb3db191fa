package calendar

import (
	"fmt"
	"time"
)

// Day is a calendar date as written into historical records.
type Day struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// DayOf converts a time to its calendar Day.
func DayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Time returns the day at midnight UTC.
func (d Day) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Suffix returns the "yyyy.mm.dd" form used in archive entry names.
func (d Day) Suffix() string {
	return fmt.Sprintf("%04d.%02d.%02d", d.Year, d.Month, d.Day)
}

// WorkingDays returns every weekday in [start, end] in ascending order.
// A Sunday start rolls forward to Monday.
func WorkingDays(start, end time.Time) []Day {
	var days []Day

	t := start
	if t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	for !t.After(end) {
		switch t.Weekday() {
		case time.Saturday:
			// Skip the whole weekend.
			t = t.AddDate(0, 0, 1)
		default:
			days = append(days, DayOf(t))
		}
		t = t.AddDate(0, 0, 1)
	}

	return days
}
