package service

import (
	"context"
	"errors"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/models"
	"github.com/hostellink/backend/internal/repository"
	"gorm.io/gorm"
)

var ErrHostelNotFound = errors.New("hostel not found")

type HostelService interface {
	ListApproved(ctx context.Context, nameQuery string) ([]models.Hostel, error)
	GetHostel(ctx context.Context, id string) (*models.Hostel, error)
	SubmitHostel(ctx context.Context, req dto.CreateHostelRequest) (*models.Hostel, error)
	ListUnverified(ctx context.Context) ([]models.Hostel, error)
	SetVerified(ctx context.Context, id string, verified bool) (*models.Hostel, error)
}

type hostelService struct {
	repo repository.HostelRepository
}

func NewHostelService(repo repository.HostelRepository) HostelService {
	return &hostelService{repo: repo}
}

func (s *hostelService) ListApproved(ctx context.Context, nameQuery string) ([]models.Hostel, error) {
	return s.repo.FindVerified(ctx, nameQuery)
}

func (s *hostelService) GetHostel(ctx context.Context, id string) (*models.Hostel, error) {
	hostel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, err
	}
	return hostel, nil
}

// SubmitHostel creates a caretaker listing. It starts unverified and only
// shows up publicly after an admin approves it.
func (s *hostelService) SubmitHostel(ctx context.Context, req dto.CreateHostelRequest) (*models.Hostel, error) {
	hostel := &models.Hostel{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Facilities:     req.Facilities,
		Photos:         req.Photos,
		DistanceMeters: req.DistanceMeters,
		CaretakerID:    req.CaretakerID,
		IsVerified:     false,
	}
	if err := s.repo.Create(ctx, hostel); err != nil {
		return nil, err
	}
	return hostel, nil
}

func (s *hostelService) ListUnverified(ctx context.Context) ([]models.Hostel, error) {
	return s.repo.FindUnverified(ctx)
}

func (s *hostelService) SetVerified(ctx context.Context, id string, verified bool) (*models.Hostel, error) {
	hostel, err := s.repo.SetVerified(ctx, id, verified)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, err
	}
	hostel.IsVerified = verified
	return hostel, nil
}
