package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/sessionstore"
	"github.com/BruksfildServices01/studio-scheduler/internal/testutil"
	"github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	bookinguc "github.com/BruksfildServices01/studio-scheduler/internal/usecase/booking"
)

func newBookingRouter(repo *testutil.FakeRepo) *gin.Engine {
	clock := testutil.FixedClock()
	create := appointment.NewCreatePublicAppointment(repo, clock, &testutil.RecordingAuditor{}, nil)
	wizard := bookinguc.NewWizard(sessionstore.NewMemoryStore(30*time.Minute), repo, clock, create)
	h := NewBookingHandler(wizard, nil)

	r := gin.New()
	r.POST("/booking", h.Start)
	r.GET("/booking/:id", h.Get)
	r.PUT("/booking/:id/service", h.SelectService)
	r.PUT("/booking/:id/slot", h.SelectSlot)
	r.POST("/booking/:id/submit", h.Submit)
	return r
}

func TestBookingHandler_Flow(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/booking", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sess := decode[booking.Session](t, w)
	assert.Equal(t, booking.StepSelectingService, sess.Step)
	base := "/booking/" + sess.ID.String()

	w = doJSON(t, r, http.MethodPut, base+"/service", map[string]string{"service_id": svc.ID.String()})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, booking.StepSelectingDateTime, decode[booking.Session](t, w).Step)

	w = doJSON(t, r, http.MethodPut, base+"/slot", map[string]string{"date": "2030-03-05", "time": "09:30"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, booking.StepEnteringDetails, decode[booking.Session](t, w).Step)

	w = doJSON(t, r, http.MethodPost, base+"/submit", map[string]string{
		"name":  "Maria Souza",
		"email": "maria@example.com",
		"phone": "11987654321",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode[struct {
		Session     booking.Session           `json:"session"`
		Appointment PublicAppointmentResponse `json:"appointment"`
	}](t, w)
	assert.Equal(t, booking.StepSubmitted, body.Session.Step)
	require.NotNil(t, body.Session.AppointmentID)
	assert.Equal(t, *body.Session.AppointmentID, body.Appointment.ID)
	assert.Equal(t, "09:30", body.Appointment.Time)
	assert.Len(t, repo.Appointments, 1)

	// envio repetido
	w = doJSON(t, r, http.MethodPut, base+"/service", map[string]string{"service_id": svc.ID.String()})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "session_submitted", decode[errorBody](t, w).Code)
}

func TestBookingHandler_SlotBeforeService(t *testing.T) {
	r := newBookingRouter(testutil.NewFakeRepo())

	sess := decode[booking.Session](t, doJSON(t, r, http.MethodPost, "/booking", nil))

	w := doJSON(t, r, http.MethodPut, "/booking/"+sess.ID.String()+"/slot",
		map[string]string{"date": "2030-03-05", "time": "09:30"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_step", decode[errorBody](t, w).Code)
}

func TestBookingHandler_UnavailableSlot(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")
	r := newBookingRouter(repo)

	sess := decode[booking.Session](t, doJSON(t, r, http.MethodPost, "/booking", nil))
	base := "/booking/" + sess.ID.String()
	doJSON(t, r, http.MethodPut, base+"/service", map[string]string{"service_id": svc.ID.String()})

	w := doJSON(t, r, http.MethodPut, base+"/slot", map[string]string{"date": "2030-03-05", "time": "11:30"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slot_unavailable", decode[errorBody](t, w).Code)
}

func TestBookingHandler_UnknownSession(t *testing.T) {
	r := newBookingRouter(testutil.NewFakeRepo())

	w := doJSON(t, r, http.MethodGet, "/booking/0e0a5f0e-8a43-4c8e-9d7e-3b6f1f2a9c10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session_not_found", decode[errorBody](t, w).Code)

	w = doJSON(t, r, http.MethodGet, "/booking/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_HoneypotSubmit(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")
	r := newBookingRouter(repo)

	sess := decode[booking.Session](t, doJSON(t, r, http.MethodPost, "/booking", nil))
	base := "/booking/" + sess.ID.String()
	doJSON(t, r, http.MethodPut, base+"/service", map[string]string{"service_id": svc.ID.String()})
	doJSON(t, r, http.MethodPut, base+"/slot", map[string]string{"date": "2030-03-05", "time": "09:00"})

	w := doJSON(t, r, http.MethodPost, base+"/submit", map[string]string{
		"name":    "Robo",
		"email":   "robo@example.com",
		"phone":   "11987654321",
		"website": "spam",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, repo.Appointments)
}
