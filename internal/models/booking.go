package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a plain move-in booking with no deposit attached.
type Booking struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	HostelID    string    `gorm:"type:uuid;not null;index" json:"hostel_id"`
	StudentID   string    `gorm:"type:uuid;not null;index" json:"student_id"`
	BookingDate time.Time `gorm:"not null" json:"booking_date"`
	MoveInDate  time.Time `gorm:"not null" json:"move_in_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
