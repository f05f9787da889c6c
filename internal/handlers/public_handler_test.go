package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/testutil"
	"github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
)

func newPublicRouter(repo *testutil.FakeRepo) *gin.Engine {
	clock := testutil.FixedClock()
	create := appointment.NewCreatePublicAppointment(repo, clock, &testutil.RecordingAuditor{}, nil)
	h := NewPublicHandler(nil, repo, clock, testConfig(), nil, create)

	r := gin.New()
	r.GET("/availability", h.ListAvailability)
	r.GET("/calendar", h.Calendar)
	r.GET("/slots", h.Slots)
	r.POST("/appointments", h.CreateAppointment)
	r.GET("/whatsapp", h.WhatsAppContact)
	return r
}

func validBooking(serviceID string) map[string]string {
	return map[string]string{
		"service_id": serviceID,
		"date":       "2030-03-05",
		"time":       "10:00",
		"name":       "Maria Souza",
		"email":      "maria@example.com",
		"phone":      "(11) 98765-4321",
	}
}

func TestPublicHandler_Slots(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")
	repo.AddAppointment(testutil.Day(2030, 3, 5), "10:00", domain.StatusConfirmed)

	w := doJSON(t, newPublicRouter(repo), http.MethodGet, "/slots?date=2030-03-05&service_id="+svc.ID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	res := decode[appointment.AvailabilityResult](t, w)
	assert.True(t, res.DateAvailable)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00"}, res.Slots)
}

func TestPublicHandler_Slots_BadParams(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	r := newPublicRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/slots?date=2030-03-05", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_params", decode[errorBody](t, w).Code)

	w = doJSON(t, r, http.MethodGet, "/slots?date=05/03/2030&service_id="+svc.ID.String(), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", decode[errorBody](t, w).Code)

	w = doJSON(t, r, http.MethodGet, "/slots?date=2030-03-05&service_id=abc", nil)
	assert.Equal(t, "invalid_service_id", decode[errorBody](t, w).Code)
}

func TestPublicHandler_Slots_UnknownService(t *testing.T) {
	repo := testutil.NewFakeRepo()

	w := doJSON(t, newPublicRouter(repo), http.MethodGet,
		"/slots?date=2030-03-05&service_id=7b0d3c2e-1f5a-4b8e-9c6d-2a1e3f4b5c6d", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", decode[errorBody](t, w).Code)
}

func TestPublicHandler_Calendar_DefaultsToCurrentMonth(t *testing.T) {
	repo := testutil.NewFakeRepo()
	repo.AddWindow(time.Tuesday, "09:00", "12:00")

	w := doJSON(t, newPublicRouter(repo), http.MethodGet, "/calendar", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Days  []struct {
			Date      string `json:"date"`
			Available bool   `json:"available"`
		} `json:"days"`
	}](t, w)

	assert.Equal(t, 2030, body.Year)
	assert.Equal(t, 3, body.Month)
	require.Len(t, body.Days, 31)
	assert.True(t, body.Days[4].Available)  // terça 05/03
	assert.False(t, body.Days[5].Available) // quarta
}

func TestPublicHandler_Calendar_InvalidMonth(t *testing.T) {
	w := doJSON(t, newPublicRouter(testutil.NewFakeRepo()), http.MethodGet, "/calendar?year=2030&month=x", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_month", decode[errorBody](t, w).Code)
}

func TestPublicHandler_CreateAppointment(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")
	r := newPublicRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/appointments", validBooking(svc.ID.String()))

	require.Equal(t, http.StatusCreated, w.Code)
	res := decode[PublicAppointmentResponse](t, w)
	assert.Equal(t, "2030-03-05", res.Date)
	assert.Equal(t, "10:00", res.Time)
	assert.Equal(t, string(domain.StatusConfirmed), res.Status)
	assert.Equal(t, svc.Name, res.Service)
	assert.Len(t, repo.Appointments, 1)

	// o mesmo horário some da lista de slots
	w = doJSON(t, r, http.MethodPost, "/appointments", validBooking(svc.ID.String()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slot_unavailable", decode[errorBody](t, w).Code)
}

func TestPublicHandler_CreateAppointment_InvalidClient(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")

	body := validBooking(svc.ID.String())
	body["email"] = "maria"
	body["phone"] = "123"

	w := doJSON(t, newPublicRouter(repo), http.MethodPost, "/appointments", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decode[errorBody](t, w)
	assert.Contains(t, res.Fields, "email")
	assert.Contains(t, res.Fields, "phone")
	assert.Empty(t, repo.Appointments)
}

func TestPublicHandler_CreateAppointment_Honeypot(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)

	body := validBooking(svc.ID.String())
	body["website"] = "http://spam.example"

	w := doJSON(t, newPublicRouter(repo), http.MethodPost, "/appointments", body)

	require.Equal(t, http.StatusCreated, w.Code)
	res := decode[PublicAppointmentResponse](t, w)
	assert.Equal(t, "10:00", res.Time)
	assert.Empty(t, repo.Appointments)
	assert.Empty(t, repo.Clients)
}

func TestPublicHandler_CreateAppointment_ClosedDay(t *testing.T) {
	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")

	body := validBooking(svc.ID.String())
	body["date"] = "2030-03-06"

	w := doJSON(t, newPublicRouter(repo), http.MethodPost, "/appointments", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "date_unavailable", decode[errorBody](t, w).Code)
}

func TestPublicHandler_CreateAppointment_MissingFields(t *testing.T) {
	w := doJSON(t, newPublicRouter(testutil.NewFakeRepo()), http.MethodPost, "/appointments", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[errorBody](t, w).Code)
}

func TestPublicHandler_WhatsAppContact(t *testing.T) {
	w := doJSON(t, newPublicRouter(testutil.NewFakeRepo()), http.MethodGet, "/whatsapp", nil)

	require.Equal(t, http.StatusOK, w.Code)
	url := decode[map[string]string](t, w)["url"]
	assert.True(t, strings.HasPrefix(url, "https://wa.me/5511933300012?text="))
	assert.NotContains(t, url, "+")
}
