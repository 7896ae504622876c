// Package types implements special types for Kasku.
package types

import (
	"fmt"
	"time"
)

// Month is a month in a specific year, in UTC.
type Month time.Time

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.In(time.UTC).Date()
	return NewMonth(year, month)
}

// ParseMonth builds a Month from a month number and a year as they are
// passed in query parameters.
func ParseMonth(month, year int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, ErrMonthInvalid
	}

	if year < 1 || year > 9999 {
		return Month{}, ErrYearInvalid
	}

	return NewMonth(year, time.Month(month)), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Label returns the month name and the year, e.g. "Maret 2026".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", monthNames[time.Time(m).Month()-1], time.Time(m).Year())
}

// Start is the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End is the first instant of the following month.
func (m Month) End() time.Time {
	return time.Time(m).AddDate(0, 1, 0)
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start()) && t.Before(m.End())
}
