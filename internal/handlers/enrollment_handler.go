package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/leads"
	"github.com/BruksfildServices01/studio-scheduler/internal/metrics"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
	"github.com/BruksfildServices01/studio-scheduler/internal/whatsapp"
)

// CourseTitles resolve o nome do curso para a mensagem; devolve "" se não achar.
type CourseTitles func(c *gin.Context, courseID string) string

type EnrollmentHandler struct {
	leads   *leads.Log
	titles  CourseTitles
	clock   *timezone.Clock
	cfg     *config.Config
	metrics *metrics.Metrics
}

func NewEnrollmentHandler(
	log *leads.Log,
	titles CourseTitles,
	clock *timezone.Clock,
	cfg *config.Config,
	m *metrics.Metrics,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		leads:   log,
		titles:  titles,
		clock:   clock,
		cfg:     cfg,
		metrics: m,
	}
}

// CourseTitlesFromDB busca o título na tabela de cursos.
func CourseTitlesFromDB(db *gorm.DB) CourseTitles {
	return func(c *gin.Context, courseID string) string {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return ""
		}
		var course models.Course
		if err := db.WithContext(c.Request.Context()).
			Select("title").
			First(&course, "id = ?", id).Error; err != nil {
			return ""
		}
		return course.Title
	}
}

type EnrollmentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CourseID string `json:"course_id" binding:"required"`
	Message  string `json:"message" binding:"max=1000"`
	Website  string `json:"website"`
}

func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	client, err := validators.Client(validators.ClientData{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	course := req.CourseID
	if h.titles != nil {
		if title := h.titles(c, req.CourseID); title != "" {
			course = title
		}
	}

	text := whatsapp.EnrollmentMessage(whatsapp.Enrollment{
		Name:    client.Name,
		Email:   client.Email,
		Phone:   client.Phone,
		Course:  course,
		Message: req.Message,
	})
	url := whatsapp.Link(h.cfg.StudioWhatsApp, text)

	// honeypot: responde igual, mas não registra
	if req.Website != "" {
		c.JSON(http.StatusCreated, gin.H{"whatsapp_url": url})
		return
	}

	h.leads.Append(leads.Enrollment{
		Name:        client.Name,
		Email:       client.Email,
		Phone:       client.Phone,
		CourseID:    req.CourseID,
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: h.clock.Now(),
	})
	h.metrics.Lead()

	c.JSON(http.StatusCreated, gin.H{"whatsapp_url": url})
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	httpresp.List(c, h.leads.List())
}
