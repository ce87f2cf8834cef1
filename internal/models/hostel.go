package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hostel struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `json:"description"`
	Price          int64     `gorm:"not null" json:"price"`
	Facilities     []string  `gorm:"serializer:json" json:"facilities"`
	Photos         []string  `gorm:"serializer:json" json:"photos"`
	DistanceMeters int       `json:"distance_meters"`
	CaretakerID    string    `gorm:"not null" json:"caretaker_id"`
	IsVerified     bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (h *Hostel) BeforeCreate(_ *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
