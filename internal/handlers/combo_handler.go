package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
)

type ComboHandler struct {
	db    *gorm.DB
	audit appointment.Auditor
}

func NewComboHandler(db *gorm.DB, audit appointment.Auditor) *ComboHandler {
	return &ComboHandler{db: db, audit: audit}
}

// --------- Requests ---------

type ComboServiceItem struct {
	Name  string  `json:"name" binding:"required,max=150"`
	Price float64 `json:"price" binding:"min=0"`
}

type ComboRequest struct {
	Title         string             `json:"title" binding:"required,max=150"`
	Campaign      string             `json:"campaign" binding:"max=100"`
	CampaignColor string             `json:"campaign_color" binding:"max=30"`
	Description   string             `json:"description" binding:"max=1000"`
	OriginalPrice float64            `json:"original_price" binding:"min=0"`
	ComboPrice    float64            `json:"combo_price" binding:"min=0"`
	Discount      string             `json:"discount" binding:"max=30"`
	Ideal         string             `json:"ideal" binding:"max=255"`
	Active        *bool              `json:"active"`
	Services      []ComboServiceItem `json:"services" binding:"dive"`
}

func (r ComboRequest) apply(combo *models.Combo) {
	combo.Title = strings.TrimSpace(r.Title)
	combo.Campaign = r.Campaign
	combo.CampaignColor = r.CampaignColor
	combo.Description = r.Description
	combo.OriginalPrice = r.OriginalPrice
	combo.ComboPrice = r.ComboPrice
	combo.Discount = r.Discount
	combo.Ideal = r.Ideal
	if r.Active != nil {
		combo.Active = *r.Active
	}
}

func (r ComboRequest) items(comboID uuid.UUID) []models.ComboService {
	out := make([]models.ComboService, 0, len(r.Services))
	for _, s := range r.Services {
		out = append(out, models.ComboService{
			ComboID: comboID,
			Name:    strings.TrimSpace(s.Name),
			Price:   s.Price,
		})
	}
	return out
}

// --------- Handlers ---------

func (h *ComboHandler) List(c *gin.Context) {
	var combos []models.Combo
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Services").
		Order("created_at DESC").
		Find(&combos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_combos"})
		return
	}
	c.JSON(http.StatusOK, combos)
}

func (h *ComboHandler) Create(c *gin.Context) {
	var req ComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	combo := models.Combo{Active: true}
	req.apply(&combo)

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Create(&combo).Error; err != nil {
			return err
		}
		combo.Services = req.items(combo.ID)
		if len(combo.Services) == 0 {
			return nil
		}
		return tx.Create(&combo.Services).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_combo"})
		return
	}

	h.record(c, "combo_created", combo.ID, gin.H{"title": combo.Title})
	c.JSON(http.StatusCreated, combo)
}

// Update troca a lista de serviços do combo inteira.
func (h *ComboHandler) Update(c *gin.Context) {
	combo, ok := h.find(c)
	if !ok {
		return
	}

	var req ComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	req.apply(combo)

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Save(combo).Error; err != nil {
			return err
		}
		if err := tx.Where("combo_id = ?", combo.ID).Delete(&models.ComboService{}).Error; err != nil {
			return err
		}
		combo.Services = req.items(combo.ID)
		if len(combo.Services) == 0 {
			return nil
		}
		return tx.Create(&combo.Services).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_combo"})
		return
	}

	h.record(c, "combo_updated", combo.ID, nil)
	c.JSON(http.StatusOK, combo)
}

func (h *ComboHandler) Delete(c *gin.Context) {
	combo, ok := h.find(c)
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("combo_id = ?", combo.ID).Delete(&models.ComboService{}).Error; err != nil {
			return err
		}
		return tx.Omit("Services").Delete(combo).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_combo"})
		return
	}

	h.record(c, "combo_deleted", combo.ID, gin.H{"title": combo.Title})
	c.Status(http.StatusNoContent)
}

func (h *ComboHandler) find(c *gin.Context) (*models.Combo, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "combo_not_found"})
		return nil, false
	}

	var combo models.Combo
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Services").
		First(&combo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "combo_not_found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_combo"})
		return nil, false
	}
	return &combo, true
}

func (h *ComboHandler) record(c *gin.Context, action string, id uuid.UUID, meta any) {
	userID := middleware.UserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "combo",
		EntityID: &id,
		Metadata: meta,
	})
}
