package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment records one transaction attempt with the provider. ProviderRef is
// the correlation key for webhook deliveries and must be unique; amounts are
// in the major currency unit.
type Payment struct {
	ID            string        `gorm:"type:uuid;primaryKey" json:"id"`
	Provider      string        `gorm:"type:varchar(30);not null" json:"provider"`
	ProviderRef   string        `gorm:"uniqueIndex;not null" json:"provider_ref"`
	Amount        int64         `gorm:"not null" json:"amount"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	StudentID     string        `gorm:"type:uuid;not null;index" json:"student_id"`
	ReservationID *string       `gorm:"type:uuid;index" json:"reservation_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p *Payment) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
