package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/content"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/metrics"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	"github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
	"github.com/BruksfildServices01/studio-scheduler/internal/whatsapp"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db      *gorm.DB
	repo    domain.Repository
	clock   *timezone.Clock
	cfg     *config.Config
	metrics *metrics.Metrics

	availability *appointment.GetAvailability
	calendar     *appointment.GetCalendar
	create       *appointment.CreatePublicAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	clock *timezone.Clock,
	cfg *config.Config,
	m *metrics.Metrics,
	create *appointment.CreatePublicAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		repo:         repo,
		clock:        clock,
		cfg:          cfg,
		metrics:      m,
		availability: appointment.NewGetAvailability(repo, clock),
		calendar:     appointment.NewGetCalendar(repo, clock),
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes" binding:"max=500"`
	Website   string `json:"website"`
}

type PublicAppointmentResponse struct {
	ID      uuid.UUID `json:"id"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Status  string    `json:"status"`
	Service string    `json:"service,omitempty"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("category ASC, name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListCourses(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	q := h.db.WithContext(c.Request.Context()).Where("active = true")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var courses []models.Course
	if err := q.Order("title ASC").Find(&courses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_courses", "Erro ao listar cursos.")
		return
	}

	httpresp.List(c, courses)
}

func (h *PublicHandler) ListCombos(c *gin.Context) {
	var combos []models.Combo
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Services").
		Where("active = true").
		Order("created_at ASC").
		Find(&combos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_combos", "Erro ao listar combos.")
		return
	}

	httpresp.List(c, combos)
}

func (h *PublicHandler) Testimonials(c *gin.Context) {
	httpresp.List(c, content.Testimonials())
}

func (h *PublicHandler) FAQ(c *gin.Context) {
	httpresp.List(c, content.FAQ())
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) ListAvailability(c *gin.Context) {
	windows, err := h.repo.ListActiveAvailability(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, windows)
}

func (h *PublicHandler) Calendar(c *gin.Context) {
	now := h.clock.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	days, err := h.calendar.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

func (h *PublicHandler) Slots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := h.clock.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), appointment.AvailabilityInput{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := h.clock.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), appointment.CreatePublicAppointmentInput{
		ServiceID: serviceID,
		Date:      date,
		Time:      req.Time,
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
		c.JSON(http.StatusCreated, PublicAppointmentResponse{
			ID:     uuid.New(),
			Date:   req.Date,
			Time:   req.Time,
			Status: string(domain.InitialStatus()),
		})
		return
	}

	h.metrics.Booking("created")
	c.JSON(http.StatusCreated, toPublicAppointment(res))
}

func toPublicAppointment(res *appointment.CreatePublicAppointmentResult) PublicAppointmentResponse {
	ap := res.Appointment
	return PublicAppointmentResponse{
		ID:      ap.ID,
		Date:    ap.AppointmentDate.Format(domain.DateLayout),
		Time:    domain.SlotTime(ap.AppointmentTime),
		Status:  ap.Status,
		Service: ap.Service.Name,
	}
}

func bookingOutcome(err error) string {
	if _, ok := httperr.AsValidation(err); ok {
		return "rejected"
	}
	switch httperr.Code(err) {
	case "":
		return "error"
	case "slot_taken":
		return "conflict"
	default:
		return "rejected"
	}
}

////////////////////////////////////////////////////////
// WHATSAPP
////////////////////////////////////////////////////////

func (h *PublicHandler) WhatsAppContact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"url": whatsapp.Link(h.cfg.StudioWhatsApp, whatsapp.ContactMessage(h.cfg.StudioName)),
	})
}
