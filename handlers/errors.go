package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthhive/models"
	"healthhive/utils"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{models.ErrInvalidTime, http.StatusBadRequest, "invalid time slot"},
	{models.ErrInvalidDate, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD"},
	{models.ErrSymptomsRequired, http.StatusBadRequest, "symptoms are required"},
	{models.ErrOutsideWorkingHours, http.StatusBadRequest, "selected time is outside working hours"},
	{models.ErrLeadTimeViolation, http.StatusBadRequest, "selected time is too soon, please choose a later slot"},
	{models.ErrImmutableAppointment, http.StatusBadRequest, "only scheduled appointments can be changed"},
	{models.ErrForbidden, http.StatusForbidden, "not authorized to access this appointment"},
	{models.ErrDoctorNotFound, http.StatusNotFound, "doctor not found"},
	{models.ErrAppointmentNotFound, http.StatusNotFound, "appointment not found"},
	{models.ErrSlotConflict, http.StatusConflict, "this time slot is already booked"},
}

// respondError maps domain errors to status codes; anything else is a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			logger.Debug("Request rejected", zap.Int("status", m.status), zap.Error(err))
			utils.JSONError(c, m.status, m.message, "")
			return
		}
	}
	logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}
