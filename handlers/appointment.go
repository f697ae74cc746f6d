package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthhive/middleware"
	"healthhive/models"
	"healthhive/services/appointment"
	"healthhive/utils"
)

type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

func NewAppointmentHandler(service appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: service, Logger: logger}
}

func (h *AppointmentHandler) userID(c *gin.Context) (string, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "User not authenticated", "")
	}
	return id, ok
}

func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	date, err := models.ParseCalendarDate(req.AppointmentDate)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	slot, err := models.ParseTimeOfDay(req.TimeSlot)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	appt, err := h.Service.Create(c.Request.Context(), appointment.CreateAppointmentInput{
		DoctorID: req.DoctorID,
		UserID:   userID,
		Date:     date,
		Slot:     slot,
		Symptoms: req.Symptoms,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": appt,
	})
}

func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	in := appointment.UpdateAppointmentInput{Symptoms: req.Symptoms, Notes: req.Notes}
	if req.AppointmentDate != nil {
		date, err := models.ParseCalendarDate(*req.AppointmentDate)
		if err != nil {
			respondError(c, h.Logger, err)
			return
		}
		in.Date = &date
	}
	if req.TimeSlot != nil {
		slot, err := models.ParseTimeOfDay(*req.TimeSlot)
		if err != nil {
			respondError(c, h.Logger, err)
			return
		}
		in.Slot = &slot
	}

	appt, err := h.Service.Update(c.Request.Context(), c.Param("id"), userID, in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment updated successfully",
		"appointment": appt,
	})
}

func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	if _, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	appt, err := h.Service.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	appts, err := h.Service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}
