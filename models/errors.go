package models

import "errors"

// Domain errors. Callers wrap these with context and match them with errors.Is.
var (
	ErrInvalidTime          = errors.New("invalid time of day")
	ErrInvalidDate          = errors.New("invalid calendar date")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrOutsideWorkingHours  = errors.New("selected time is outside working hours")
	ErrLeadTimeViolation    = errors.New("appointment must be booked ahead of the lead time")
	ErrSlotConflict         = errors.New("this time slot is already booked")
	ErrImmutableAppointment = errors.New("appointment can no longer be changed")
	ErrForbidden            = errors.New("appointment belongs to another user")
	ErrSymptomsRequired     = errors.New("symptoms are required")
	ErrNotYetEnded          = errors.New("appointment has not ended yet")
)
