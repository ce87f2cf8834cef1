package dto

import "github.com/hostellink/backend/internal/models"

type ReservationCreatedResponse struct {
	Reservation *models.Reservation `json:"reservation"`
	Payment     *models.Payment     `json:"payment"`
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
