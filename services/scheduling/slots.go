package scheduling

import "healthhive/models"

// DefaultSlotDuration is the appointment length in minutes when none is configured.
const DefaultSlotDuration = 30

// GenerateSlots returns every start t = open + k*duration with t+duration <= close, ascending.
func GenerateSlots(open, close models.TimeOfDay, durationMinutes int) []models.TimeOfDay {
	if durationMinutes <= 0 || close <= open {
		return []models.TimeOfDay{}
	}
	slots := make([]models.TimeOfDay, 0, (int(close)-int(open))/durationMinutes)
	for t := open; int(t)+durationMinutes <= int(close); t += models.TimeOfDay(durationMinutes) {
		slots = append(slots, t)
	}
	return slots
}

// SlotsFor generates the bookable starts of a resolved window.
func SlotsFor(w DayWindow, durationMinutes int) []models.TimeOfDay {
	if !w.IsOpen {
		return []models.TimeOfDay{}
	}
	return GenerateSlots(w.Open, w.Close, durationMinutes)
}
