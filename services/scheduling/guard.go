package scheduling

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"healthhive/models"
	"healthhive/utils"
)

// DefaultLeadTime is the minimum gap between now and an appointment start.
const DefaultLeadTime = 30 * time.Minute

// Guard validates a proposed (doctor, date, slot) before any write. It is the application-level
// pre-check; the store's partial unique index is the backstop under concurrency.
type Guard struct {
	Appointments    BookedSlotReader
	Clock           utils.Clock
	Location        *time.Location
	DurationMinutes int
	LeadTime        time.Duration
	Logger          *zap.Logger
}

type GuardConfig struct {
	DurationMinutes int
	LeadTime        time.Duration
	Location        *time.Location
}

func NewGuard(appointments BookedSlotReader, clock utils.Clock, cfg GuardConfig, logger *zap.Logger) *Guard {
	if cfg.DurationMinutes <= 0 {
		cfg.DurationMinutes = DefaultSlotDuration
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Guard{
		Appointments:    appointments,
		Clock:           clock,
		Location:        cfg.Location,
		DurationMinutes: cfg.DurationMinutes,
		LeadTime:        cfg.LeadTime,
		Logger:          logger,
	}
}

// Validate runs the working-hours, lead-time and conflict checks in that order.
// excludeID skips the appointment being edited.
func (g *Guard) Validate(ctx context.Context, doctor models.Doctor, date models.CalendarDate, slot models.TimeOfDay, excludeID string) error {
	if err := g.CheckWorkingHours(doctor, date, slot); err != nil {
		return err
	}
	if err := g.CheckLeadTime(date, slot); err != nil {
		return err
	}
	conflict, err := g.CheckConflict(ctx, doctor.ID, date, slot, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		g.Logger.Info("Slot conflict",
			zap.String("doctorId", doctor.ID),
			zap.String("date", date.String()),
			zap.String("slot", slot.Format()),
		)
		return fmt.Errorf("%w: %s at %s", models.ErrSlotConflict, date, slot)
	}
	return nil
}

// CheckWorkingHours requires open <= slot and slot+duration <= close. Starts need not fall on
// the generated grid.
func (g *Guard) CheckWorkingHours(doctor models.Doctor, date models.CalendarDate, slot models.TimeOfDay) error {
	w := ResolveDay(doctor, date)
	if !w.IsOpen {
		return fmt.Errorf("%w: doctor is not available on %s", models.ErrOutsideWorkingHours, date)
	}
	if !w.Fits(slot, g.DurationMinutes) {
		return fmt.Errorf("%w: %s does not fit between %s and %s", models.ErrOutsideWorkingHours, slot, w.Open, w.Close)
	}
	return nil
}

// CheckLeadTime fails when the slot starts before now + LeadTime. Past dates always fail.
func (g *Guard) CheckLeadTime(date models.CalendarDate, slot models.TimeOfDay) error {
	start := date.At(slot, g.Location)
	earliest := g.Clock.Now().In(g.Location).Add(g.LeadTime)
	if start.Before(earliest) {
		return fmt.Errorf("%w: %s %s starts before %s", models.ErrLeadTimeViolation, date, slot, earliest.Format("2006-01-02 15:04"))
	}
	return nil
}

// CheckConflict reports whether another scheduled appointment holds the slot.
func (g *Guard) CheckConflict(ctx context.Context, doctorID string, date models.CalendarDate, slot models.TimeOfDay, excludeID string) (bool, error) {
	existing, err := g.Appointments.FindScheduledByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return false, fmt.Errorf("failed to check conflicts for doctor %s on %s: %w", doctorID, date, err)
	}
	for _, a := range existing {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if a.Slot.Compare(slot) == 0 {
			return true, nil
		}
	}
	return false, nil
}
