package models

import (
	"time"

	"github.com/google/uuid"
)

// Combo é um pacote promocional de serviços com preço fechado.
type Combo struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title         string  `gorm:"size:150;not null" json:"title"`
	Campaign      string  `gorm:"size:100" json:"campaign"`
	CampaignColor string  `gorm:"size:30" json:"campaign_color"`
	Description   string  `gorm:"size:1000" json:"description"`
	OriginalPrice float64 `gorm:"not null" json:"original_price"`
	ComboPrice    float64 `gorm:"not null" json:"combo_price"`
	Discount      string  `gorm:"size:30" json:"discount"`
	Ideal         string  `gorm:"size:255" json:"ideal"`
	Active        bool    `gorm:"default:true" json:"active"`

	Services []ComboService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ComboService struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ComboID uuid.UUID `gorm:"type:uuid;not null;index" json:"combo_id"`

	Name  string  `gorm:"size:150;not null" json:"name"`
	Price float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
