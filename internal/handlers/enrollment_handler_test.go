package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/leads"
	"github.com/BruksfildServices01/studio-scheduler/internal/testutil"
)

func newEnrollmentRouter(log *leads.Log, titles CourseTitles) *gin.Engine {
	h := NewEnrollmentHandler(log, titles, testutil.FixedClock(), testConfig(), nil)

	r := gin.New()
	r.POST("/enrollments", h.Create)
	r.GET("/enrollments", h.List)
	return r
}

func enrollment() map[string]string {
	return map[string]string{
		"name":      "Ana Lima",
		"email":     "ana@example.com",
		"phone":     "(21) 99876-5432",
		"course_id": "curso-1",
		"message":   "Tenho interesse",
	}
}

func TestEnrollmentHandler_Create(t *testing.T) {
	log := leads.NewLog()
	titles := func(_ *gin.Context, id string) string {
		if id == "curso-1" {
			return "Design de Sobrancelhas"
		}
		return ""
	}
	r := newEnrollmentRouter(log, titles)

	w := doJSON(t, r, http.MethodPost, "/enrollments", enrollment())

	require.Equal(t, http.StatusCreated, w.Code)
	url := decode[map[string]string](t, w)["whatsapp_url"]
	assert.True(t, strings.HasPrefix(url, "https://wa.me/5511933300012?text="))
	assert.Contains(t, url, "Design%20de%20Sobrancelhas")

	require.Equal(t, 1, log.Len())
	assert.Equal(t, "curso-1", log.List()[0].CourseID)

	w = doJSON(t, r, http.MethodGet, "/enrollments", nil)
	list := decode[httpresp.ListResponse[leads.Enrollment]](t, w)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "ana@example.com", list.Data[0].Email)
}

func TestEnrollmentHandler_Honeypot(t *testing.T) {
	log := leads.NewLog()
	body := enrollment()
	body["website"] = "spam"

	w := doJSON(t, newEnrollmentRouter(log, nil), http.MethodPost, "/enrollments", body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decode[map[string]string](t, w)["whatsapp_url"])
	assert.Zero(t, log.Len())
}

func TestEnrollmentHandler_InvalidClient(t *testing.T) {
	log := leads.NewLog()
	body := enrollment()
	body["name"] = "A"

	w := doJSON(t, newEnrollmentRouter(log, nil), http.MethodPost, "/enrollments", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorBody](t, w).Fields, "name")
	assert.Zero(t, log.Len())
}
