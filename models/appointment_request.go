package models

// CreateAppointmentRequest is the raw POST /api/appointments body.
type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctorId" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"` // "2025-06-02" or RFC3339
	TimeSlot        string `json:"timeSlot" binding:"required"`        // "10:30 AM" or "10:30"
	Symptoms        string `json:"symptoms" binding:"required"`
	Notes           string `json:"notes"`
}

// UpdateAppointmentRequest is the raw PUT /api/appointments/:id body; omitted fields are unchanged.
type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointmentDate"`
	TimeSlot        *string `json:"timeSlot"`
	Symptoms        *string `json:"symptoms"`
	Notes           *string `json:"notes"`
}
