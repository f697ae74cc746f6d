package scheduling

import "healthhive/models"

// DayWindow is a doctor's resolved [Open, Close) window for one date.
type DayWindow struct {
	IsOpen bool             `json:"isOpen"`
	Open   models.TimeOfDay `json:"openTime,omitempty"`
	Close  models.TimeOfDay `json:"closeTime,omitempty"`
}

var closed = DayWindow{}

// ResolveDay maps a date onto the doctor's schedule. Date overrides win over the weekly table.
// A closed day is a normal outcome, not an error.
func ResolveDay(doctor models.Doctor, date models.CalendarDate) DayWindow {
	if !doctor.IsAvailable {
		return closed
	}
	if ex, ok := doctor.ExceptionFor(date); ok {
		return window(ex.IsOpen, ex.OpenTime, ex.CloseTime)
	}
	entry, ok := doctor.ScheduleFor(date.Weekday())
	if !ok {
		return closed
	}
	return window(entry.IsOpen, entry.OpenTime, entry.CloseTime)
}

// Fits reports whether an appointment of durationMinutes starting at slot lies inside the window.
func (w DayWindow) Fits(slot models.TimeOfDay, durationMinutes int) bool {
	return w.IsOpen && w.Open <= slot && int(slot)+durationMinutes <= int(w.Close)
}

// window closes inverted or out-of-range entries instead of failing.
// A close of 12:00 AM after a later open means end of day.
func window(isOpen bool, open, close models.TimeOfDay) DayWindow {
	if close == 0 && open > 0 {
		close = models.MinutesPerDay
	}
	if !isOpen || !open.Valid() || close <= open || close > models.MinutesPerDay {
		return closed
	}
	return DayWindow{IsOpen: true, Open: open, Close: close}
}
