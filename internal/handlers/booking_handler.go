package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/metrics"
	bookinguc "github.com/BruksfildServices01/studio-scheduler/internal/usecase/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// BookingHandler expõe o agendamento em etapas:
// serviço → data/horário → dados do cliente → envio.
type BookingHandler struct {
	wizard  *bookinguc.Wizard
	metrics *metrics.Metrics
}

func NewBookingHandler(wizard *bookinguc.Wizard, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{wizard: wizard, metrics: m}
}

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SelectSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type SubmitBookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes" binding:"max=500"`
	Website string `json:"website"`
}

func (h *BookingHandler) Start(c *gin.Context) {
	sess, err := h.wizard.Start(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.wizard.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) SelectService(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	sess, err := h.wizard.SelectService(c.Request.Context(), id, serviceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) SelectSlot(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	sess, err := h.wizard.SelectSlot(c.Request.Context(), id, req.Date, req.Time)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *BookingHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	sess, res, err := h.wizard.Submit(c.Request.Context(), id, bookinguc.SubmitInput{
		Client: validators.ClientData{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
		Notes:    strings.TrimSpace(req.Notes),
		Honeypot: req.Website,
	})
	if err != nil {
		h.metrics.Booking(bookingOutcome(err))
		writeError(c, err)
		return
	}

	if res.Discarded {
		h.metrics.Booking("discarded")
		c.JSON(http.StatusCreated, gin.H{
			"session": sess,
			"appointment": PublicAppointmentResponse{
				ID:     uuid.New(),
				Date:   sess.Date,
				Time:   sess.Time,
				Status: string(domain.InitialStatus()),
			},
		})
		return
	}

	h.metrics.Booking("created")
	c.JSON(http.StatusCreated, gin.H{
		"session":     sess,
		"appointment": toPublicAppointment(res),
	})
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "session_not_found", businessMessages["session_not_found"])
		return uuid.Nil, false
	}
	return id, true
}

