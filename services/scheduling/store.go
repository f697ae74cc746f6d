package scheduling

import (
	"context"

	"healthhive/models"
)

// BookedSlotReader is the single appointment-store read the engine and guard depend on.
type BookedSlotReader interface {
	FindScheduledByDoctorAndDate(ctx context.Context, doctorID string, date models.CalendarDate) ([]models.Appointment, error)
}
