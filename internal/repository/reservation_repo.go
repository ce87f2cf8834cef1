package repository

import (
	"context"
	"time"

	"github.com/hostellink/backend/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByIDWithDetails(ctx context.Context, id string) (*models.Reservation, error)
	SetDepositPaid(ctx context.Context, tx *gorm.DB, reservationID string, paidAt time.Time) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByIDWithDetails(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		Preload("Hostel").
		First(&reservation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// SetDepositPaid records the deposit timestamp once; a replayed webhook that
// arrives after the first write leaves the original timestamp in place.
func (r *reservationRepository) SetDepositPaid(ctx context.Context, tx *gorm.DB, reservationID string, paidAt time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND deposit_paid_at IS NULL", reservationID).
		Update("deposit_paid_at", paidAt).Error
}

// ExpireOverdue transitions reservations whose hold lapsed without a deposit.
func (r *reservationRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("status = ? AND expires_at < ? AND deposit_paid_at IS NULL", models.ReservationPending, now).
		Update("status", models.ReservationExpired)
	return result.RowsAffected, result.Error
}

func (r *reservationRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
