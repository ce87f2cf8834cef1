package models

import "time"

// WebhookEvent is an audit record of every delivery received from a payment
// provider, including ones that were rejected or ignored. The provider
// retries on non-2xx responses, so the same reference can appear more than
// once here; Processed marks the delivery that actually moved state.
type WebhookEvent struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Provider       string    `gorm:"type:varchar(30);not null;index" json:"provider"`
	EventType      string    `gorm:"type:varchar(60);not null" json:"event_type"`
	ProviderRef    string    `gorm:"index" json:"provider_ref"`
	SignatureValid bool      `gorm:"not null;default:false" json:"signature_valid"`
	Processed      bool      `gorm:"not null;default:false" json:"processed"`
	PayloadJSON    string    `gorm:"type:text" json:"payload_json"`
	CreatedAt      time.Time `json:"created_at"`
}
