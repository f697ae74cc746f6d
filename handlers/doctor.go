package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthhive/models"
	"healthhive/services/doctor"
	"healthhive/services/scheduling"
	"healthhive/utils"
)

type DoctorHandler struct {
	Service      doctor.DoctorService
	Availability *scheduling.Engine
	Logger       *zap.Logger
}

func NewDoctorHandler(service doctor.DoctorService, availability *scheduling.Engine, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Service: service, Availability: availability, Logger: logger}
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DoctorHandler) ListSpecialtiesHandler(c *gin.Context) {
	specialties, err := h.Service.Specialties(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, specialties)
}

type availabilityResponse struct {
	DoctorID       string              `json:"doctorId"`
	Date           models.CalendarDate `json:"date"`
	IsOpen         bool                `json:"isOpen"`
	AvailableSlots []models.TimeOfDay  `json:"availableSlots"`
	Message        string              `json:"message,omitempty"`
}

// GetAvailabilityHandler serves GET /api/doctors/:id/availability?date=YYYY-MM-DD.
// An unknown doctor is reported before any problem with the date.
func (h *DoctorHandler) GetAvailabilityHandler(c *gin.Context) {
	doc, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	rawDate := strings.TrimSpace(c.Query("date"))
	if rawDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}
	date, err := models.ParseCalendarDate(rawDate)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	availability, err := h.Availability.GetAvailability(c.Request.Context(), *doc, date)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	resp := availabilityResponse{
		DoctorID:       doc.ID,
		Date:           availability.Date,
		IsOpen:         availability.IsOpen,
		AvailableSlots: availability.AvailableSlots,
	}
	if !availability.IsOpen {
		resp.Message = "Doctor is not available on this day"
	}
	c.JSON(http.StatusOK, resp)
}
