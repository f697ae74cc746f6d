// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"healthhive/models"
)

var (
	ErrNotFound = errors.New("appointment not found")
	// ErrDuplicateKey means another scheduled appointment already holds the (doctor, date, slot) key.
	ErrDuplicateKey = errors.New("duplicate scheduled slot")
	// ErrNotScheduled means the conditional update lost to a cancel/complete.
	ErrNotScheduled = errors.New("appointment is not scheduled")
)

type AppointmentRepository interface {
	Insert(ctx context.Context, appt models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	FindScheduledByDoctorAndDate(ctx context.Context, doctorID string, date models.CalendarDate) ([]models.Appointment, error)
	// UpdateIfScheduled applies patch only while the stored status is still scheduled.
	UpdateIfScheduled(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}
