package models

import (
	"time"

	"github.com/google/uuid"
)

// Availability é uma janela semanal de atendimento (0 = domingo).
type Availability struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	DayOfWeek int    `gorm:"not null;index" json:"day_of_week"`
	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Availability) TableName() string {
	return "availability"
}
