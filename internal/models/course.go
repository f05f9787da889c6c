package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string   `gorm:"size:150;not null" json:"title"`
	Description string   `gorm:"size:1000" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Duration    string   `gorm:"size:50" json:"duration"`
	Category    string   `gorm:"size:50" json:"category"`
	Image       string   `gorm:"size:500" json:"image"`
	Features    []string `gorm:"type:jsonb;serializer:json" json:"features"`
	CheckoutURL string   `gorm:"size:500" json:"checkout_url"`
	Active      bool     `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
