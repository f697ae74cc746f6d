package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar date format, e.g. "2025-02-25".
const DateLayout = "2006-01-02"

// CalendarDate is a date with no time-of-day component.
type CalendarDate string

// DayOfWeek names a weekday the way schedules store it.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Week lists days Monday-first.
var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayOfWeekOf converts a time.Weekday.
func DayOfWeekOf(w time.Weekday) DayOfWeek {
	if w == time.Sunday {
		return Sunday
	}
	return Week[int(w)-1]
}

// Valid reports whether d is one of the seven day names.
func (d DayOfWeek) Valid() bool {
	for _, day := range Week {
		if d == day {
			return true
		}
	}
	return false
}

// ParseCalendarDate accepts "YYYY-MM-DD" or an RFC3339 timestamp, whose clock part is dropped.
func ParseCalendarDate(raw string) (CalendarDate, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return CalendarDate(t.Format(DateLayout)), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CalendarDate(t.Format(DateLayout)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate(t.Format(DateLayout))
}

func (d CalendarDate) String() string { return string(d) }

func (d CalendarDate) parse() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return t, nil
}

// Valid reports whether d is a well-formed date.
func (d CalendarDate) Valid() bool {
	_, err := d.parse()
	return err == nil
}

// Weekday returns the calendar day of week; malformed dates yield "".
func (d CalendarDate) Weekday() DayOfWeek {
	t, err := d.parse()
	if err != nil {
		return ""
	}
	return DayOfWeekOf(t.Weekday())
}

// At combines the date and a time of day into an instant in loc.
func (d CalendarDate) At(t TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	day, err := d.parse()
	if err != nil {
		return time.Time{}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
