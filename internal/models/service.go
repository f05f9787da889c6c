package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"size:500" json:"description"`
	DurationMinutes int     `gorm:"not null;default:60" json:"duration_minutes"`
	Price           float64 `gorm:"not null" json:"price"`
	Category        string  `gorm:"size:50" json:"category"`
	Active          bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
