package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	db    *gorm.DB
	audit appointment.Auditor
}

func NewAvailabilityHandler(db *gorm.DB, audit appointment.Auditor) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, audit: audit}
}

type AvailabilityWindow struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    bool   `json:"active"`
}

type AvailabilityUpdateRequest struct {
	Windows []AvailabilityWindow `json:"windows" binding:"required,dive"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	var windows []models.Availability
	if err := h.db.WithContext(c.Request.Context()).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Update substitui todas as janelas semanais de uma vez.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	toCreate := make([]models.Availability, 0, len(req.Windows))
	for _, w := range req.Windows {
		if !validWindow(w.StartTime, w.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_window",
				"message": "Horário inicial deve ser anterior ao final (formato HH:MM).",
			})
			return
		}
		toCreate = append(toCreate, models.Availability{
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Active:    w.Active,
		})
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
		return
	}

	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "availability_updated",
		Entity:   "availability",
		Metadata: gin.H{"windows": len(toCreate)},
	})

	c.JSON(http.StatusOK, toCreate)
}

func validWindow(start, end string) bool {
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && s.Before(e)
}
