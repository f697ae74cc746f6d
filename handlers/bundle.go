// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"healthhive/middleware"
	"healthhive/utils"
)

// HandlerBundle groups all endpoint handlers and the middleware routes need.
type HandlerBundle struct {
	Auth          gin.HandlerFunc
	HealthMonitor *utils.HealthMonitor // nil when running without external services

	// Doctor endpoints
	ListDoctorsHandler     gin.HandlerFunc
	GetDoctorHandler       gin.HandlerFunc
	ListSpecialtiesHandler gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	CreateAppointmentHandler gin.HandlerFunc
	UpdateAppointmentHandler gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
}

// NewHandlerBundle wires handler methods into a bundle.
func NewHandlerBundle(doctors *DoctorHandler, appointments *AppointmentHandler, verifier middleware.UserIDResolver, health *utils.HealthMonitor) *HandlerBundle {
	return &HandlerBundle{
		Auth:          middleware.JWTAuthMiddleware(verifier, doctors.Logger),
		HealthMonitor: health,

		ListDoctorsHandler:     doctors.ListDoctorsHandler,
		GetDoctorHandler:       doctors.GetDoctorHandler,
		ListSpecialtiesHandler: doctors.ListSpecialtiesHandler,
		GetAvailabilityHandler: doctors.GetAvailabilityHandler,

		ListAppointmentsHandler:  appointments.ListAppointmentsHandler,
		GetAppointmentHandler:    appointments.GetAppointmentHandler,
		CreateAppointmentHandler: appointments.CreateAppointmentHandler,
		UpdateAppointmentHandler: appointments.UpdateAppointmentHandler,
		CancelAppointmentHandler: appointments.CancelAppointmentHandler,
	}
}
