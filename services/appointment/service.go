package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "healthhive/database/repository/appointment"
	doctorRepo "healthhive/database/repository/doctor"
	"healthhive/models"
	"healthhive/services/scheduling"
	"healthhive/utils"
)

var _ AppointmentService = (*DefaultAppointmentService)(nil)

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Doctors      doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Guard        *scheduling.Guard
	Completion   CompletionScheduler // optional
	Clock        utils.Clock
	SlotDuration time.Duration
	Location     *time.Location
	Logger       *zap.Logger
}

func (s *DefaultAppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	symptoms := strings.TrimSpace(in.Symptoms)
	if symptoms == "" {
		return nil, models.ErrSymptomsRequired
	}

	doctor, err := s.loadDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	if err := s.Guard.Validate(ctx, *doctor, in.Date, in.Slot, ""); err != nil {
		return nil, err
	}

	now := s.Clock.Now().UTC()
	appt := models.Appointment{
		ID:              uuid.New().String(),
		DoctorID:        doctor.ID,
		UserID:          in.UserID,
		Date:            in.Date,
		Slot:            in.Slot,
		Status:          models.StatusScheduled,
		Symptoms:        symptoms,
		Notes:           strings.TrimSpace(in.Notes),
		ConsultationFee: doctor.ConsultationFee,
		PaymentStatus:   models.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateKey) {
			s.Logger.Info("Lost booking race on unique slot index",
				zap.String("doctorId", appt.DoctorID),
				zap.String("date", appt.Date.String()),
				zap.String("slot", appt.Slot.Format()),
			)
			return nil, fmt.Errorf("%w: %s at %s", models.ErrSlotConflict, appt.Date, appt.Slot)
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.Logger.Info("Appointment created",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("userId", appt.UserID),
		zap.String("date", appt.Date.String()),
		zap.String("slot", appt.Slot.Format()),
	)
	s.scheduleCompletion(ctx, appt)
	return &appt, nil
}

func (s *DefaultAppointmentService) Update(ctx context.Context, id, userID string, in UpdateAppointmentInput) (*models.Appointment, error) {
	current, err := s.loadOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusScheduled {
		return nil, fmt.Errorf("%w: status is %s", models.ErrImmutableAppointment, current.Status)
	}

	patch := models.AppointmentPatch{Notes: in.Notes}
	if in.Symptoms != nil {
		trimmed := strings.TrimSpace(*in.Symptoms)
		if trimmed == "" {
			return nil, models.ErrSymptomsRequired
		}
		patch.Symptoms = &trimmed
	}

	target := *current
	if in.Date != nil {
		target.Date = *in.Date
	}
	if in.Slot != nil {
		target.Slot = *in.Slot
	}
	moved := target.Date != current.Date || target.Slot.Compare(current.Slot) != 0
	if moved {
		doctor, err := s.loadDoctor(ctx, current.DoctorID)
		if err != nil {
			return nil, err
		}
		if err := s.Guard.Validate(ctx, *doctor, target.Date, target.Slot, current.ID); err != nil {
			return nil, err
		}
		patch.Date = &target.Date
		patch.Slot = &target.Slot
	}

	updated, err := s.Appointments.UpdateIfScheduled(ctx, id, patch)
	if err != nil {
		return nil, s.translateUpdateErr(id, err)
	}

	s.Logger.Info("Appointment updated", zap.String("appointmentId", id), zap.Bool("rescheduled", moved))
	if moved {
		s.scheduleCompletion(ctx, *updated)
	}
	return updated, nil
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, userID string) (*models.Appointment, error) {
	current, err := s.loadOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, current, models.StatusCancelled)
}

// Complete is the external Scheduled -> Completed trigger. It refuses before the slot has ended.
func (s *DefaultAppointmentService) Complete(ctx context.Context, id string) (*models.Appointment, error) {
	current, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, models.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}
	if current.Status == models.StatusScheduled {
		if end := current.EndsAt(s.slotDuration(), s.location()); s.Clock.Now().Before(end) {
			return nil, fmt.Errorf("%w: ends at %s", models.ErrNotYetEnded, end.Format(time.RFC3339))
		}
	}
	return s.transition(ctx, current, models.StatusCompleted)
}

func (s *DefaultAppointmentService) Get(ctx context.Context, id, userID string) (*models.Appointment, error) {
	return s.loadOwned(ctx, id, userID)
}

func (s *DefaultAppointmentService) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for user %s: %w", userID, err)
	}
	return appts, nil
}

func (s *DefaultAppointmentService) transition(ctx context.Context, current *models.Appointment, to models.AppointmentStatus) (*models.Appointment, error) {
	if !models.CanTransition(current.Status, to) {
		return nil, fmt.Errorf("%w: cannot move from %s to %s", models.ErrImmutableAppointment, current.Status, to)
	}
	updated, err := s.Appointments.UpdateIfScheduled(ctx, current.ID, models.AppointmentPatch{Status: &to})
	if err != nil {
		return nil, s.translateUpdateErr(current.ID, err)
	}
	s.Logger.Info("Appointment status changed",
		zap.String("appointmentId", current.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(to)),
	)
	return updated, nil
}

func (s *DefaultAppointmentService) translateUpdateErr(id string, err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrNotFound):
		return models.ErrAppointmentNotFound
	case errors.Is(err, appointmentRepo.ErrNotScheduled):
		return fmt.Errorf("%w: appointment %s is no longer scheduled", models.ErrImmutableAppointment, id)
	case errors.Is(err, appointmentRepo.ErrDuplicateKey):
		return models.ErrSlotConflict
	default:
		return fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
}

func (s *DefaultAppointmentService) loadDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, models.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to load doctor %s: %w", id, err)
	}
	return doctor, nil
}

func (s *DefaultAppointmentService) loadOwned(ctx context.Context, id, userID string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, models.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}
	if appt.UserID != userID {
		return nil, models.ErrForbidden
	}
	return appt, nil
}

// scheduleCompletion is best-effort; a booking never fails because the queue is down.
func (s *DefaultAppointmentService) scheduleCompletion(ctx context.Context, appt models.Appointment) {
	if s.Completion == nil {
		return
	}
	if err := s.Completion.ScheduleCompletion(ctx, appt); err != nil {
		s.Logger.Warn("Failed to schedule appointment completion",
			zap.String("appointmentId", appt.ID),
			zap.Error(err),
		)
	}
}

func (s *DefaultAppointmentService) slotDuration() time.Duration {
	if s.SlotDuration <= 0 {
		return scheduling.DefaultSlotDuration * time.Minute
	}
	return s.SlotDuration
}

func (s *DefaultAppointmentService) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
