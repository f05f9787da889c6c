package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/dto"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	"github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/whatsapp"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo  domain.Repository
	clock *timezone.Clock
	cfg   *config.Config

	list     *appointment.ListAppointments
	update   *appointment.UpdateAppointment
	cancel   *appointment.CancelAppointment
	complete *appointment.CompleteAppointment
	remove   *appointment.DeleteAppointment
}

func NewAppointmentHandler(
	repo domain.Repository,
	clock *timezone.Clock,
	cfg *config.Config,
	audit appointment.Auditor,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		clock:    clock,
		cfg:      cfg,
		list:     appointment.NewListAppointments(repo),
		update:   appointment.NewUpdateAppointment(repo, clock, audit),
		cancel:   appointment.NewCancelAppointment(repo, clock, audit),
		complete: appointment.NewCompleteAppointment(repo, clock, audit),
		remove:   appointment.NewDeleteAppointment(repo, audit),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	Date   *string `json:"appointment_date"`
	Time   *string `json:"appointment_time"`
	Status *string `json:"status"`
	Notes  *string `json:"notes" binding:"omitempty,max=500"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	if s := strings.TrimSpace(c.Query("status")); s != "" && s != "all" {
		status, err := domain.ParseStatus(s)
		if err != nil {
			writeError(c, err)
			return
		}
		filter.Status = &status
	}

	if from := c.Query("from"); from != "" {
		d, err := h.clock.ParseDate(from)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		filter.From = &d
	}

	if to := c.Query("to"); to != "" {
		d, err := h.clock.ParseDate(to)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		filter.To = &d
	}

	out, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.list.ByMonth(c.Request.Context(), year, time.Month(month), h.clock.Location())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(*ap))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	in := appointment.UpdateAppointmentInput{
		Time:   req.Time,
		Status: req.Status,
		Notes:  req.Notes,
	}
	if req.Date != nil {
		d, err := h.clock.ParseDate(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		in.Date = &d
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(*ap))
}

// ======================================================
// CANCEL / COMPLETE / DELETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// WHATSAPP
// ======================================================

func (h *AppointmentHandler) WhatsApp(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	text := whatsapp.AppointmentMessage(
		ap.Client.Name,
		ap.Service.Name,
		ap.AppointmentDate,
		domain.SlotTime(ap.AppointmentTime),
	)

	c.JSON(http.StatusOK, gin.H{
		"url": whatsapp.Link(ap.Client.Phone, text),
	})
}

func appointmentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", businessMessages["appointment_not_found"])
		return uuid.Nil, false
	}
	return id, true
}
