package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationExpired   ReservationStatus = "EXPIRED"
)

// Reservation is a student's claim on a hostel slot, held open until
// ExpiresAt unless the deposit is paid. DepositPaidAt is set by the payment
// webhook; nothing currently moves status past PENDING after payment — that
// transition is an open product decision.
type Reservation struct {
	ID            string            `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID     string            `gorm:"type:uuid;not null;index" json:"student_id"`
	HostelID      string            `gorm:"type:uuid;not null;index" json:"hostel_id"`
	DepositAmount int64             `gorm:"not null" json:"deposit_amount"`
	Status        ReservationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ExpiresAt     time.Time         `gorm:"not null" json:"expires_at"`
	DepositPaidAt *time.Time        `json:"deposit_paid_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Hostel   *Hostel   `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	Payments []Payment `gorm:"foreignKey:ReservationID" json:"payments,omitempty"`
}

func (r *Reservation) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
