package appointment

import (
	"context"

	"healthhive/models"
)

// AppointmentService is the booking lifecycle used by the HTTP layer and the completion worker.
type AppointmentService interface {
	Create(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error)
	Update(ctx context.Context, id, userID string, in UpdateAppointmentInput) (*models.Appointment, error)
	Cancel(ctx context.Context, id, userID string) (*models.Appointment, error)
	Complete(ctx context.Context, id string) (*models.Appointment, error)
	Get(ctx context.Context, id, userID string) (*models.Appointment, error)
	ListForUser(ctx context.Context, userID string) ([]models.Appointment, error)
}

// CompletionScheduler arranges for an appointment to be marked completed once its slot ends.
type CompletionScheduler interface {
	ScheduleCompletion(ctx context.Context, appt models.Appointment) error
}

// CreateAppointmentInput is already parsed; raw strings never reach the service.
type CreateAppointmentInput struct {
	DoctorID string
	UserID   string
	Date     models.CalendarDate
	Slot     models.TimeOfDay
	Symptoms string
	Notes    string
}

// UpdateAppointmentInput leaves nil fields unchanged.
type UpdateAppointmentInput struct {
	Date     *models.CalendarDate
	Slot     *models.TimeOfDay
	Symptoms *string
	Notes    *string
}
