package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/models"
	"github.com/hostellink/backend/internal/repository"
	"github.com/hostellink/backend/pkg/paystack"
	"github.com/hostellink/backend/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrGateway          = errors.New("payment gateway error")
)

const webhookEventChargeSuccess = "charge.success"

// PaymentGateway is the provider-side collaborator. Amounts go out in the
// major currency unit and come back in the provider's minor unit.
type PaymentGateway interface {
	Initialize(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error)
	Verify(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

type PaymentService interface {
	ProcessWebhook(ctx context.Context, provider string, body []byte, signature string) (bool, error)
	InitializePayment(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error)
	VerifyPayment(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

type paymentService struct {
	paymentRepo     repository.PaymentRepository
	reservationRepo repository.ReservationRepository
	webhookRepo     repository.WebhookEventRepository
	gateway         PaymentGateway
	publisher       *rabbitmq.Publisher
	webhookSecret   string
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	reservationRepo repository.ReservationRepository,
	webhookRepo repository.WebhookEventRepository,
	gateway PaymentGateway,
	publisher *rabbitmq.Publisher,
	webhookSecret string,
) PaymentService {
	return &paymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		webhookRepo:     webhookRepo,
		gateway:         gateway,
		publisher:       publisher,
		webhookSecret:   webhookSecret,
	}
}

// ProcessWebhook verifies the delivery, applies at most one Payment state
// transition, and reports whether anything changed. Unmatched references and
// replays are acknowledged no-ops: the provider retries indefinitely on
// non-2xx, so only a bad signature is worth rejecting.
func (s *paymentService) ProcessWebhook(ctx context.Context, provider string, body []byte, signature string) (bool, error) {
	sigValid := s.signatureValid(body, signature)

	var evt dto.PaystackWebhookEvent
	parseErr := json.Unmarshal(body, &evt)

	processed := false
	defer func() {
		s.recordDelivery(ctx, provider, evt, body, sigValid, processed)
	}()

	if !sigValid {
		log.Printf("[PaymentService] rejected webhook from %s: signature mismatch", provider)
		return false, ErrInvalidSignature
	}
	if parseErr != nil {
		log.Printf("[PaymentService] unparseable webhook body from %s: %v", provider, parseErr)
		return false, nil
	}
	if evt.Event != webhookEventChargeSuccess {
		return false, nil
	}

	amountMajor := evt.Data.Amount / 100

	err := s.paymentRepo.Transaction(ctx, func(tx *gorm.DB) error {
		moved, err := s.paymentRepo.MarkSucceededIfPending(ctx, tx, evt.Data.Reference, amountMajor)
		if err != nil {
			return fmt.Errorf("mark payment succeeded: %w", err)
		}
		if moved == 0 {
			if _, err := s.paymentRepo.FindByProviderRef(ctx, tx, evt.Data.Reference); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("[PaymentService] no payment matches reference %s", evt.Data.Reference)
					return nil
				}
				return err
			}
			log.Printf("[PaymentService] replayed webhook for reference %s, already settled", evt.Data.Reference)
			return nil
		}

		payment, err := s.paymentRepo.FindByProviderRef(ctx, tx, evt.Data.Reference)
		if err != nil {
			return fmt.Errorf("reload payment: %w", err)
		}
		if payment.ReservationID != nil {
			if err := s.reservationRepo.SetDepositPaid(ctx, tx, *payment.ReservationID, time.Now()); err != nil {
				return fmt.Errorf("set deposit paid: %w", err)
			}
		}
		processed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if processed && s.publisher != nil {
		_ = s.publisher.Publish("payment.succeeded", map[string]any{
			"provider_ref": evt.Data.Reference,
			"amount":       amountMajor,
		})
	}

	return processed, nil
}

func (s *paymentService) InitializePayment(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error) {
	if email == "" || amountMajor <= 0 {
		return nil, fmt.Errorf("%w: email and a positive amount are required", ErrValidation)
	}
	result, err := s.gateway.Initialize(ctx, email, amountMajor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return result, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrValidation)
	}
	result, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return result, nil
}

// signatureValid fails closed: with no configured secret every delivery is
// rejected rather than trusted.
func (s *paymentService) signatureValid(body []byte, signature string) bool {
	if s.webhookSecret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(s.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *paymentService) recordDelivery(ctx context.Context, provider string, evt dto.PaystackWebhookEvent, body []byte, sigValid, processed bool) {
	if s.webhookRepo == nil {
		return
	}
	record := &models.WebhookEvent{
		Provider:       provider,
		EventType:      evt.Event,
		ProviderRef:    evt.Data.Reference,
		SignatureValid: sigValid,
		Processed:      processed,
		PayloadJSON:    string(body),
	}
	if err := s.webhookRepo.Record(ctx, record); err != nil {
		log.Printf("[PaymentService] failed to record webhook delivery: %v", err)
	}
}
