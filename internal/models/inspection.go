package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inspection is a scheduled visit to a hostel before committing to it.
type Inspection struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	HostelID       string    `gorm:"type:uuid;not null;index" json:"hostel_id"`
	StudentID      string    `gorm:"type:uuid;not null;index" json:"student_id"`
	InspectionDate time.Time `gorm:"not null" json:"inspection_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (i *Inspection) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
