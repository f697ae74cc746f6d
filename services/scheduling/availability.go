package scheduling

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"healthhive/models"
)

// Availability is the advisory set of open slots for one doctor and date.
type Availability struct {
	Date           models.CalendarDate `json:"date"`
	IsOpen         bool                `json:"isOpen"`
	AvailableSlots []models.TimeOfDay  `json:"availableSlots"`
}

// Engine computes availability. It never writes, and its answer may be stale by the time a
// client books; the Guard and the store's unique index decide at write time.
type Engine struct {
	Appointments    BookedSlotReader
	DurationMinutes int
	Logger          *zap.Logger
}

func NewEngine(appointments BookedSlotReader, durationMinutes int, logger *zap.Logger) *Engine {
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotDuration
	}
	return &Engine{Appointments: appointments, DurationMinutes: durationMinutes, Logger: logger}
}

func (e *Engine) GetAvailability(ctx context.Context, doctor models.Doctor, date models.CalendarDate) (Availability, error) {
	// 1. Resolve the working window.
	w := ResolveDay(doctor, date)
	if !w.IsOpen {
		return Availability{Date: date, IsOpen: false, AvailableSlots: []models.TimeOfDay{}}, nil
	}

	// 2. Generate candidate slots.
	candidates := SlotsFor(w, e.DurationMinutes)

	// 3. One read of what is already booked.
	booked, err := e.Appointments.FindScheduledByDoctorAndDate(ctx, doctor.ID, date)
	if err != nil {
		return Availability{}, fmt.Errorf("failed to load booked slots for doctor %s on %s: %w", doctor.ID, date, err)
	}
	taken := make(map[models.TimeOfDay]struct{}, len(booked))
	for _, a := range booked {
		taken[a.Slot] = struct{}{}
	}

	// 4. Subtract, keeping ascending order.
	open := make([]models.TimeOfDay, 0, len(candidates))
	for _, s := range candidates {
		if _, isTaken := taken[s]; !isTaken {
			open = append(open, s)
		}
	}

	e.Logger.Debug("Computed availability",
		zap.String("doctorId", doctor.ID),
		zap.String("date", date.String()),
		zap.Int("generated", len(candidates)),
		zap.Int("booked", len(booked)),
		zap.Int("available", len(open)),
	)
	return Availability{Date: date, IsOpen: true, AvailableSlots: open}, nil
}
