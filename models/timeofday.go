package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds a TimeOfDay: valid values are 0..MinutesPerDay-1.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time stored as minutes from midnight (e.g., 540 for 9:00 AM).
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from a 24-hour clock reading.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts "HH:MM" (24h) and "H:MM AM"/"H:MM PM" (12h, any case, optional space).
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidTime)
	}

	meridiem := ""
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		meridiem = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)

	if meridiem != "" {
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	return t, nil
}

// MustParseTimeOfDay panics on malformed input; meant for fixtures.
func MustParseTimeOfDay(raw string) TimeOfDay {
	t, err := ParseTimeOfDay(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Minutes returns the offset from midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool { return t >= 0 && t < MinutesPerDay }

// Hour and Minute return the 24-hour clock components.
func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Compare orders two times by minute offset.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	default:
		return 0
	}
}

// Format renders the canonical "H:MM AM/PM" text.
func (t TimeOfDay) Format() string {
	hour := t.Hour()
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem)
}

func (t TimeOfDay) String() string { return t.Format() }

// MarshalJSON emits the canonical text form.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format())
}

// UnmarshalJSON accepts either text form, or a bare minute offset.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var minutes int
		if numErr := json.Unmarshal(data, &minutes); numErr != nil {
			return fmt.Errorf("%w: %s", ErrInvalidTime, string(data))
		}
		if !TimeOfDay(minutes).Valid() {
			return fmt.Errorf("%w: %d minutes", ErrInvalidTime, minutes)
		}
		*t = TimeOfDay(minutes)
		return nil
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
