package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/models"
	"github.com/hostellink/backend/internal/repository"
	"github.com/hostellink/backend/pkg/rabbitmq"
	"gorm.io/gorm"
)

// ReservationHoldWindow is how long a pending reservation is held open for
// the deposit before it is eligible for expiry.
const ReservationHoldWindow = 48 * time.Hour

const depositProvider = "paystack"

var (
	ErrValidation          = errors.New("validation failed")
	ErrReservationNotFound = errors.New("reservation not found")
)

type ReservationService interface {
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*models.Reservation, *models.Payment, error)
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	paymentRepo     repository.PaymentRepository
	publisher       *rabbitmq.Publisher
}

func NewReservationService(reservationRepo repository.ReservationRepository, paymentRepo repository.PaymentRepository, publisher *rabbitmq.Publisher) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		publisher:       publisher,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*models.Reservation, *models.Payment, error) {
	if req.StudentID == "" {
		return nil, nil, fmt.Errorf("%w: student_id is required", ErrValidation)
	}
	if req.HostelID == "" {
		return nil, nil, fmt.Errorf("%w: hostel_id is required", ErrValidation)
	}
	if req.DepositAmount <= 0 {
		return nil, nil, fmt.Errorf("%w: deposit_amount must be positive", ErrValidation)
	}

	providerRef := req.ProviderRef
	if providerRef == "" {
		// Random, not clock-derived: the reference is the webhook
		// correlation key and must be unique.
		providerRef = "local-" + uuid.NewString()
	}

	reservation := &models.Reservation{
		StudentID:     req.StudentID,
		HostelID:      req.HostelID,
		DepositAmount: req.DepositAmount,
		Status:        models.ReservationPending,
		ExpiresAt:     time.Now().Add(ReservationHoldWindow),
	}
	payment := &models.Payment{
		Provider:    depositProvider,
		ProviderRef: providerRef,
		Amount:      req.DepositAmount,
		Status:      models.PaymentPending,
		StudentID:   req.StudentID,
	}

	// Reservation and its payment stand or fall together.
	err := s.reservationRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.reservationRepo.Create(ctx, tx, reservation); err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		payment.ReservationID = &reservation.ID
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("reservation.created", reservation)
	}

	return reservation, payment, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}
