package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/testutil"
)

func newAppointmentRouter(repo *testutil.FakeRepo, aud *testutil.RecordingAuditor) *gin.Engine {
	h := NewAppointmentHandler(repo, testutil.FixedClock(), testConfig(), aud)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		c.Set(middleware.ContextUserRole, "admin")
		c.Next()
	})
	r.GET("/appointments", h.List)
	r.GET("/appointments/:id", h.Get)
	r.PATCH("/appointments/:id", h.Update)
	r.PATCH("/appointments/:id/cancel", h.Cancel)
	r.PATCH("/appointments/:id/complete", h.Complete)
	r.DELETE("/appointments/:id", h.Delete)
	r.GET("/appointments/:id/whatsapp", h.WhatsApp)
	return r
}

func TestAppointmentHandler_Cancel(t *testing.T) {
	repo := testutil.NewFakeRepo()
	aud := &testutil.RecordingAuditor{}
	ap := repo.AddAppointment(testutil.Day(2030, 3, 5), "10:00", domain.StatusConfirmed)
	r := newAppointmentRouter(repo, aud)

	w := doJSON(t, r, http.MethodPatch, "/appointments/"+ap.ID.String()+"/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(domain.StatusCancelled), decode[dto.AppointmentListDTO](t, w).Status)
	assert.Equal(t, []string{"appointment_cancelled"}, aud.Actions())

	w = doJSON(t, r, http.MethodPatch, "/appointments/"+ap.ID.String()+"/complete", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", decode[errorBody](t, w).Code)
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	repo := testutil.NewFakeRepo()
	ap := repo.AddAppointment(testutil.Day(2030, 3, 5), "10:00", domain.StatusPending)
	r := newAppointmentRouter(repo, &testutil.RecordingAuditor{})

	w := doJSON(t, r, http.MethodPatch, "/appointments/"+ap.ID.String(), map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decode[dto.AppointmentListDTO](t, w).Status)

	w = doJSON(t, r, http.MethodPatch, "/appointments/"+ap.ID.String(), map[string]string{"status": "scheduled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", decode[errorBody](t, w).Code)
}

func TestAppointmentHandler_GetAndDelete(t *testing.T) {
	repo := testutil.NewFakeRepo()
	ap := repo.AddAppointment(testutil.Day(2030, 3, 5), "10:00", domain.StatusConfirmed)
	r := newAppointmentRouter(repo, &testutil.RecordingAuditor{})

	w := doJSON(t, r, http.MethodGet, "/appointments/"+ap.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.AppointmentListDTO](t, w)
	assert.Equal(t, "10:00", got.Time)
	assert.Equal(t, "Cliente não encontrado", got.Client.Name)

	w = doJSON(t, r, http.MethodDelete, "/appointments/"+ap.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/appointments/"+ap.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppointmentHandler_ListFilter(t *testing.T) {
	repo := testutil.NewFakeRepo()
	repo.AddAppointment(testutil.Day(2030, 3, 5), "10:00", domain.StatusConfirmed)
	repo.AddAppointment(testutil.Day(2030, 3, 5), "11:00", domain.StatusCancelled)
	r := newAppointmentRouter(repo, &testutil.RecordingAuditor{})

	w := doJSON(t, r, http.MethodGet, "/appointments?status=cancelled", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[httpresp.ListResponse[dto.AppointmentListDTO]](t, w).Total)

	w = doJSON(t, r, http.MethodGet, "/appointments?status=all", nil)
	assert.Equal(t, 2, decode[httpresp.ListResponse[dto.AppointmentListDTO]](t, w).Total)
}

func TestAppointmentHandler_WhatsApp(t *testing.T) {
	repo := testutil.NewFakeRepo()
	ap := repo.AddAppointment(testutil.Day(2030, 3, 5), "10:00", domain.StatusConfirmed)
	ap.Client.Name = "Maria"
	ap.Client.Phone = "(11) 98765-4321"
	ap.Service.Name = "Design"
	r := newAppointmentRouter(repo, &testutil.RecordingAuditor{})

	w := doJSON(t, r, http.MethodGet, "/appointments/"+ap.ID.String()+"/whatsapp", nil)

	require.Equal(t, http.StatusOK, w.Code)
	url := decode[map[string]string](t, w)["url"]
	assert.Contains(t, url, "https://wa.me/5511987654321?text=")
	assert.Contains(t, url, "05%2F03%2F2030")
}

func TestAppointmentHandler_BadID(t *testing.T) {
	r := newAppointmentRouter(testutil.NewFakeRepo(), &testutil.RecordingAuditor{})

	w := doJSON(t, r, http.MethodPatch, "/appointments/xyz/cancel", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", decode[errorBody](t, w).Code)
}
