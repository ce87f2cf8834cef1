package repository

import (
	"context"

	"github.com/hostellink/backend/internal/models"
	"gorm.io/gorm"
)

type HostelRepository interface {
	Create(ctx context.Context, hostel *models.Hostel) error
	FindByID(ctx context.Context, id string) (*models.Hostel, error)
	FindVerified(ctx context.Context, nameQuery string) ([]models.Hostel, error)
	FindUnverified(ctx context.Context) ([]models.Hostel, error)
	SetVerified(ctx context.Context, id string, verified bool) (*models.Hostel, error)
}

type hostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) HostelRepository {
	return &hostelRepository{db: db}
}

func (r *hostelRepository) Create(ctx context.Context, hostel *models.Hostel) error {
	return r.db.WithContext(ctx).Create(hostel).Error
}

func (r *hostelRepository) FindByID(ctx context.Context, id string) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := r.db.WithContext(ctx).First(&hostel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (r *hostelRepository) FindVerified(ctx context.Context, nameQuery string) ([]models.Hostel, error) {
	var hostels []models.Hostel
	q := r.db.WithContext(ctx).Where("is_verified = ?", true)
	if nameQuery != "" {
		q = q.Where("name ILIKE ?", "%"+nameQuery+"%")
	}
	if err := q.Order("created_at DESC").Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

func (r *hostelRepository) FindUnverified(ctx context.Context) ([]models.Hostel, error) {
	var hostels []models.Hostel
	if err := r.db.WithContext(ctx).
		Where("is_verified = ?", false).
		Order("created_at ASC").
		Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

func (r *hostelRepository) SetVerified(ctx context.Context, id string, verified bool) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := r.db.WithContext(ctx).First(&hostel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&hostel).
		Update("is_verified", verified).Error; err != nil {
		return nil, err
	}
	return &hostel, nil
}
