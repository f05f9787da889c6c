package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/storage"
	"github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
)

type CourseHandler struct {
	db       *gorm.DB
	audit    appointment.Auditor
	uploader storage.Uploader
	log      *zap.Logger
}

// NewCourseHandler aceita uploader nil: sem bucket configurado o upload
// de imagem responde 503.
func NewCourseHandler(db *gorm.DB, audit appointment.Auditor, uploader storage.Uploader, log *zap.Logger) *CourseHandler {
	return &CourseHandler{db: db, audit: audit, uploader: uploader, log: log}
}

// --------- Requests ---------

type CourseRequest struct {
	Title       string   `json:"title" binding:"required,max=150"`
	Description string   `json:"description" binding:"max=1000"`
	Price       float64  `json:"price" binding:"min=0"`
	Duration    string   `json:"duration" binding:"max=50"`
	Category    string   `json:"category" binding:"max=50"`
	Image       string   `json:"image" binding:"max=500"`
	Features    []string `json:"features"`
	CheckoutURL string   `json:"checkout_url" binding:"omitempty,url,max=500"`
	Active      *bool    `json:"active"`
}

func (r CourseRequest) apply(course *models.Course) {
	course.Title = strings.TrimSpace(r.Title)
	course.Description = r.Description
	course.Price = r.Price
	course.Duration = r.Duration
	course.Category = r.Category
	course.Image = r.Image
	course.Features = r.Features
	course.CheckoutURL = r.CheckoutURL
	if r.Active != nil {
		course.Active = *r.Active
	}
	if course.Features == nil {
		course.Features = []string{}
	}
}

// --------- Handlers ---------

func (h *CourseHandler) List(c *gin.Context) {
	var courses []models.Course
	if err := h.db.WithContext(c.Request.Context()).
		Order("title ASC").
		Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	course := models.Course{Active: true}
	req.apply(&course)

	if err := h.db.WithContext(c.Request.Context()).Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_course"})
		return
	}

	h.record(c, "course_created", course.ID, gin.H{"title": course.Title})
	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	course, ok := h.find(c)
	if !ok {
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	req.apply(course)

	if err := h.db.WithContext(c.Request.Context()).Save(course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_course"})
		return
	}

	h.record(c, "course_updated", course.ID, nil)
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	course, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_course"})
		return
	}

	h.record(c, "course_deleted", course.ID, gin.H{"title": course.Title})
	c.Status(http.StatusNoContent)
}

// UploadImage recebe multipart "image", converte para WebP e grava no bucket.
func (h *CourseHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage_disabled"})
		return
	}

	course, ok := h.find(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_required"})
		return
	}
	if fileHeader.Size > storage.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image_too_large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_unreadable"})
		return
	}
	defer f.Close()

	data, err := storage.ToWebP(f, storage.MaxImageWidth)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "unsupported_image",
				"message": "Envie uma imagem JPEG, PNG ou WebP.",
			})
			return
		}
		h.log.Error("encode course image", zap.String("course_id", course.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_process_image"})
		return
	}

	key := fmt.Sprintf("courses/%s-%s.webp", course.ID, uuid.NewString()[:8])
	url, err := h.uploader.Put(c.Request.Context(), key, "image/webp", data)
	if err != nil {
		h.log.Error("upload course image", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed_to_upload_image"})
		return
	}

	course.Image = url
	if err := h.db.WithContext(c.Request.Context()).
		Model(course).
		Update("image", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_course"})
		return
	}

	h.record(c, "course_image_uploaded", course.ID, gin.H{"key": key, "bytes": len(data)})
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) find(c *gin.Context) (*models.Course, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course_not_found"})
		return nil, false
	}

	var course models.Course
	if err := h.db.WithContext(c.Request.Context()).First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "course_not_found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_course"})
		return nil, false
	}
	return &course, true
}

func (h *CourseHandler) record(c *gin.Context, action string, id uuid.UUID, meta any) {
	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "course",
		EntityID: &id,
		Metadata: meta,
	})
}
