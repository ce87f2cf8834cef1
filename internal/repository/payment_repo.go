package repository

import (
	"context"

	"github.com/hostellink/backend/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	FindByProviderRef(ctx context.Context, tx *gorm.DB, providerRef string) (*models.Payment, error)
	MarkSucceededIfPending(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByProviderRef(ctx context.Context, tx *gorm.DB, providerRef string) (*models.Payment, error) {
	var payment models.Payment
	if err := tx.WithContext(ctx).
		First(&payment, "provider_ref = ?", providerRef).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkSucceededIfPending applies the SUCCESS transition only to a payment
// still in PENDING, which makes concurrent or replayed webhook deliveries
// for the same reference collapse into a single state change. Returns the
// number of rows moved (0 or 1, provider_ref is unique).
func (r *paymentRepository) MarkSucceededIfPending(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.Payment{}).
		Where("provider_ref = ? AND status = ?", providerRef, models.PaymentPending).
		Updates(map[string]any{
			"status": models.PaymentSuccess,
			"amount": amount,
		})
	return result.RowsAffected, result.Error
}

func (r *paymentRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
