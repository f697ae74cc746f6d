package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appointmentRepo "healthhive/database/repository/appointment"
	doctorRepo "healthhive/database/repository/doctor"
	"healthhive/handlers"
	"healthhive/models"
	"healthhive/services/appointment"
	"healthhive/services/doctor"
	"healthhive/services/scheduling"
	"healthhive/utils"
)

const secret = "route-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	tokens map[string]string
}

// 2025-06-02 is a Monday; the clock sits at 07:00 that morning.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	clock := utils.FixedClock{T: time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)}

	doctors := doctorRepo.NewMemoryDoctorRepo(models.Doctor{
		ID:              "doc-1",
		Name:            "Amit Patel",
		Specialty:       "Dermatologist",
		ConsultationFee: 1400,
		IsAvailable:     true,
		Schedule: []models.WeeklyScheduleEntry{
			{Day: models.Monday, OpenTime: models.MustParseTimeOfDay("09:00"), CloseTime: models.MustParseTimeOfDay("12:00"), IsOpen: true},
			{Day: models.Sunday, IsOpen: false},
		},
	})
	appointments := appointmentRepo.NewMemoryAppointmentRepo()

	engine := scheduling.NewEngine(appointments, 30, logger)
	guard := scheduling.NewGuard(appointments, clock, scheduling.GuardConfig{DurationMinutes: 30, LeadTime: scheduling.DefaultLeadTime}, logger)
	apptSvc := &appointment.DefaultAppointmentService{
		Doctors:      doctors,
		Appointments: appointments,
		Guard:        guard,
		Clock:        clock,
		SlotDuration: 30 * time.Minute,
		Logger:       logger,
	}
	verifier, err := utils.NewTokenVerifier(secret)
	require.NoError(t, err)

	bundle := handlers.NewHandlerBundle(
		handlers.NewDoctorHandler(&doctor.DefaultDoctorService{Repo: doctors}, engine, logger),
		handlers.NewAppointmentHandler(apptSvc, logger),
		verifier,
		nil,
	)
	r := gin.New()
	r.Use(utils.ErrorHandler(logger))
	RegisterRoutes(r, bundle, []string{"*"})

	tokens := map[string]string{}
	for _, u := range []string{"alice", "bob"} {
		tok, err := utils.SignUserToken(secret, u, nil)
		require.NoError(t, err)
		tokens[u] = tok
	}
	return &testServer{router: r, tokens: tokens}
}

func (s *testServer) do(t *testing.T, user, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[user])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func book(slot string) map[string]string {
	return map[string]string{
		"doctorId":        "doc-1",
		"appointmentDate": "2025-06-02",
		"timeSlot":        slot,
		"symptoms":        "itchy rash",
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, "", http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestRequiresAuth(t *testing.T) {
	s := newTestServer(t)
	code, _ := s.do(t, "", http.MethodGet, "/api/doctors", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAvailabilityEndpoint(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, "alice", http.MethodGet, "/api/doctors/doc-1/availability?date=2025-06-02", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["isOpen"])
	assert.Equal(t, []interface{}{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"}, body["availableSlots"])

	code, _ = s.do(t, "alice", http.MethodPost, "/api/appointments", book("10:00 AM"))
	require.Equal(t, http.StatusCreated, code)

	_, body = s.do(t, "alice", http.MethodGet, "/api/doctors/doc-1/availability?date=2025-06-02", nil)
	assert.NotContains(t, body["availableSlots"], "10:00 AM")
	assert.Len(t, body["availableSlots"], 5)

	code, body = s.do(t, "alice", http.MethodGet, "/api/doctors/doc-1/availability?date=2025-06-08", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["isOpen"])
	assert.Empty(t, body["availableSlots"])

	code, _ = s.do(t, "alice", http.MethodGet, "/api/doctors/doc-1/availability", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(t, "alice", http.MethodGet, "/api/doctors/doc-1/availability?date=June", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(t, "alice", http.MethodGet, "/api/doctors/ghost/availability?date=2025-06-02", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Unknown doctor wins over a bad or missing date.
	code, _ = s.do(t, "alice", http.MethodGet, "/api/doctors/ghost/availability?date=June", nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = s.do(t, "alice", http.MethodGet, "/api/doctors/ghost/availability", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, "alice", http.MethodPost, "/api/appointments", book("10:00 AM"))
	require.Equal(t, http.StatusCreated, code)
	appt := body["appointment"].(map[string]interface{})
	assert.Equal(t, "10:00 AM", appt["timeSlot"])
	assert.Equal(t, "2025-06-02", appt["appointmentDate"])
	assert.Equal(t, 1400.0, appt["consultationFee"])
	assert.Equal(t, "scheduled", appt["status"])
	assert.Equal(t, "alice", appt["userId"])

	code, body = s.do(t, "bob", http.MethodPost, "/api/appointments", book("10:00"))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "this time slot is already booked", body["message"])

	code, body = s.do(t, "bob", http.MethodPost, "/api/appointments", book("12:00 PM"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "selected time is outside working hours", body["message"])

	code, _ = s.do(t, "bob", http.MethodPost, "/api/appointments", book("quarter past ten"))
	assert.Equal(t, http.StatusBadRequest, code)

	missing := book("10:30 AM")
	missing["doctorId"] = "ghost"
	code, _ = s.do(t, "bob", http.MethodPost, "/api/appointments", missing)
	assert.Equal(t, http.StatusNotFound, code)

	noSymptoms := book("10:30 AM")
	delete(noSymptoms, "symptoms")
	code, _ = s.do(t, "bob", http.MethodPost, "/api/appointments", noSymptoms)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, "bob", http.MethodPost, "/api/appointments", book("10:30 AM"))
	assert.Equal(t, http.StatusCreated, code)
}

func TestLeadTimeEndpoint(t *testing.T) {
	s := newTestServer(t)
	// An earlier Monday: inside working hours but already in the past.
	past := book("9:00 AM")
	past["appointmentDate"] = "2025-05-26"
	code, _ := s.do(t, "alice", http.MethodPost, "/api/appointments", past)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpdateAndCancelEndpoints(t *testing.T) {
	s := newTestServer(t)

	_, body := s.do(t, "alice", http.MethodPost, "/api/appointments", book("9:00 AM"))
	id := body["appointment"].(map[string]interface{})["id"].(string)
	s.do(t, "bob", http.MethodPost, "/api/appointments", book("9:30 AM"))

	code, _ := s.do(t, "bob", http.MethodPut, "/api/appointments/"+id, map[string]string{"notes": "hi"})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(t, "alice", http.MethodPut, "/api/appointments/"+id, map[string]string{"timeSlot": "9:30 AM"})
	assert.Equal(t, http.StatusConflict, code)

	code, body = s.do(t, "alice", http.MethodPut, "/api/appointments/"+id, map[string]string{"timeSlot": "11:30", "notes": "bring reports"})
	require.Equal(t, http.StatusOK, code)
	updated := body["appointment"].(map[string]interface{})
	assert.Equal(t, "11:30 AM", updated["timeSlot"])
	assert.Equal(t, "bring reports", updated["notes"])

	code, _ = s.do(t, "alice", http.MethodGet, "/api/appointments/"+id, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, "bob", http.MethodGet, "/api/appointments/"+id, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(t, "bob", http.MethodDelete, "/api/appointments/"+id, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = s.do(t, "alice", http.MethodDelete, "/api/appointments/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Appointment cancelled successfully", body["message"])

	code, _ = s.do(t, "alice", http.MethodDelete, "/api/appointments/"+id, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(t, "alice", http.MethodPut, "/api/appointments/"+id, map[string]string{"notes": "again"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, "alice", http.MethodDelete, "/api/appointments/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDoctorEndpoints(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/specialties/list", nil)
	req.Header.Set("Authorization", "Bearer "+s.tokens["alice"])
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Dermatologist"]`, w.Body.String())

	code, body := s.do(t, "alice", http.MethodGet, "/api/doctors/doc-1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Amit Patel", body["name"])

	code, _ = s.do(t, "alice", http.MethodGet, "/api/doctors/ghost", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
