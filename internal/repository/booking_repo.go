package repository

import (
	"context"

	"github.com/hostellink/backend/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	CreateInspection(ctx context.Context, inspection *models.Inspection) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) CreateInspection(ctx context.Context, inspection *models.Inspection) error {
	return r.db.WithContext(ctx).Create(inspection).Error
}
