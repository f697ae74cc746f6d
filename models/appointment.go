package models

import "time"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition encodes the lifecycle: only scheduled appointments move, and only to a terminal state.
func CanTransition(from, to AppointmentStatus) bool {
	return from == StatusScheduled && to.Terminal()
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	DoctorID        string            `bson:"doctorId" json:"doctorId"`
	UserID          string            `bson:"userId" json:"userId"`
	Date            CalendarDate      `bson:"date" json:"appointmentDate"`
	Slot            TimeOfDay         `bson:"slot" json:"timeSlot"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	Symptoms        string            `bson:"symptoms" json:"symptoms"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	ConsultationFee float64           `bson:"consultationFee" json:"consultationFee"` // snapshot taken at booking
	PaymentStatus   PaymentStatus     `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// StartsAt returns the appointment start instant in loc.
func (a Appointment) StartsAt(loc *time.Location) time.Time {
	return a.Date.At(a.Slot, loc)
}

// EndsAt returns the end of the booked slot.
func (a Appointment) EndsAt(duration time.Duration, loc *time.Location) time.Time {
	return a.StartsAt(loc).Add(duration)
}

// AppointmentPatch carries the mutable fields of an update; nil means unchanged.
type AppointmentPatch struct {
	Date     *CalendarDate
	Slot     *TimeOfDay
	Symptoms *string
	Notes    *string
	Status   *AppointmentStatus
}

// Apply copies set fields onto a.
func (p AppointmentPatch) Apply(a *Appointment) {
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Slot != nil {
		a.Slot = *p.Slot
	}
	if p.Symptoms != nil {
		a.Symptoms = *p.Symptoms
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}
