package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/models"
	"github.com/hostellink/backend/internal/repository"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error)
	CreateInspection(ctx context.Context, req dto.CreateInspectionRequest) (*models.Inspection, error)
}

type bookingService struct {
	repo repository.BookingRepository
}

func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error) {
	if req.HostelID == "" || req.StudentID == "" || req.MoveInDate == nil {
		return nil, fmt.Errorf("%w: hostel_id, student_id and move_in_date are required", ErrValidation)
	}

	booking := &models.Booking{
		HostelID:    req.HostelID,
		StudentID:   req.StudentID,
		BookingDate: time.Now(),
		MoveInDate:  *req.MoveInDate,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) CreateInspection(ctx context.Context, req dto.CreateInspectionRequest) (*models.Inspection, error) {
	if req.HostelID == "" || req.StudentID == "" || req.InspectionDate == nil {
		return nil, fmt.Errorf("%w: hostel_id, student_id and inspection_date are required", ErrValidation)
	}

	inspection := &models.Inspection{
		HostelID:       req.HostelID,
		StudentID:      req.StudentID,
		InspectionDate: *req.InspectionDate,
	}
	if err := s.repo.CreateInspection(ctx, inspection); err != nil {
		return nil, err
	}
	return inspection, nil
}
