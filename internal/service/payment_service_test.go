package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/hostellink/backend/internal/models"
	"github.com/hostellink/backend/pkg/paystack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_test_123"

// --- Mock WebhookEventRepository ---

type mockWebhookRepo struct {
	records []*models.WebhookEvent
}

func (m *mockWebhookRepo) Record(ctx context.Context, event *models.WebhookEvent) error {
	m.records = append(m.records, event)
	return nil
}

// --- Mock PaymentGateway ---

type mockGateway struct {
	initializeFn func(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error)
	verifyFn     func(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

func (m *mockGateway) Initialize(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error) {
	return m.initializeFn(ctx, email, amountMajor)
}

func (m *mockGateway) Verify(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
	return m.verifyFn(ctx, reference)
}

// --- Helpers ---

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func chargeSuccessBody(reference string, amountMinor int64) []byte {
	return fmt.Appendf(nil, `{"event":"charge.success","data":{"reference":%q,"amount":%d,"status":"success"}}`, reference, amountMinor)
}

func newWebhookService(payRepo *mockPaymentRepo, resRepo *mockReservationRepo, whRepo *mockWebhookRepo) PaymentService {
	return NewPaymentService(payRepo, resRepo, whRepo, nil, nil, testWebhookSecret)
}

// --- Webhook tests ---

func TestProcessWebhook_ChargeSuccess(t *testing.T) {
	reservationID := "res-42"
	var markedRef string
	var markedAmount int64

	payRepo := &mockPaymentRepo{
		markSucceededFn: func(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error) {
			markedRef = providerRef
			markedAmount = amount
			return 1, nil
		},
		findByRefFn: func(ctx context.Context, tx *gorm.DB, providerRef string) (*models.Payment, error) {
			return &models.Payment{
				ID:            "pay-1",
				ProviderRef:   providerRef,
				Status:        models.PaymentSuccess,
				ReservationID: &reservationID,
			}, nil
		},
	}
	resRepo := &mockReservationRepo{}
	whRepo := &mockWebhookRepo{}
	svc := newWebhookService(payRepo, resRepo, whRepo)

	body := chargeSuccessBody("local-abc", 500000)
	processed, err := svc.ProcessWebhook(context.Background(), "paystack", body, signBody(body, testWebhookSecret))

	require.NoError(t, err)
	assert.True(t, processed)
	assert.Equal(t, "local-abc", markedRef)
	assert.Equal(t, int64(5000), markedAmount, "minor units must be converted to major units")
	assert.Equal(t, 1, resRepo.setDepositPaidCalls)

	require.Len(t, whRepo.records, 1)
	assert.True(t, whRepo.records[0].SignatureValid)
	assert.True(t, whRepo.records[0].Processed)
	assert.Equal(t, "charge.success", whRepo.records[0].EventType)
}

func TestProcessWebhook_InvalidSignature(t *testing.T) {
	payRepo := &mockPaymentRepo{
		markSucceededFn: func(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error) {
			t.Fatal("must not touch payments on signature failure")
			return 0, nil
		},
	}
	resRepo := &mockReservationRepo{}
	whRepo := &mockWebhookRepo{}
	svc := newWebhookService(payRepo, resRepo, whRepo)

	body := chargeSuccessBody("local-abc", 500000)
	processed, err := svc.ProcessWebhook(context.Background(), "paystack", body, "deadbeef")

	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.False(t, processed)
	assert.Zero(t, resRepo.setDepositPaidCalls)

	require.Len(t, whRepo.records, 1, "rejected deliveries are still audited")
	assert.False(t, whRepo.records[0].SignatureValid)
}

func TestProcessWebhook_NoSecretFailsClosed(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, &mockReservationRepo{}, &mockWebhookRepo{}, nil, nil, "")

	body := chargeSuccessBody("local-abc", 500000)
	_, err := svc.ProcessWebhook(context.Background(), "paystack", body, signBody(body, "whatever"))

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestProcessWebhook_ReplayIsNoOp(t *testing.T) {
	payRepo := &mockPaymentRepo{
		markSucceededFn: func(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error) {
			return 0, nil // already SUCCESS, conditional update matches nothing
		},
		findByRefFn: func(ctx context.Context, tx *gorm.DB, providerRef string) (*models.Payment, error) {
			return &models.Payment{ID: "pay-1", ProviderRef: providerRef, Status: models.PaymentSuccess}, nil
		},
	}
	resRepo := &mockReservationRepo{}
	svc := newWebhookService(payRepo, resRepo, &mockWebhookRepo{})

	body := chargeSuccessBody("local-abc", 500000)
	processed, err := svc.ProcessWebhook(context.Background(), "paystack", body, signBody(body, testWebhookSecret))

	require.NoError(t, err)
	assert.False(t, processed, "replay must not apply a second transition")
	assert.Zero(t, resRepo.setDepositPaidCalls)
}

func TestProcessWebhook_UnmatchedReferenceAcknowledged(t *testing.T) {
	payRepo := &mockPaymentRepo{
		markSucceededFn: func(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error) {
			return 0, nil
		},
		findByRefFn: func(ctx context.Context, tx *gorm.DB, providerRef string) (*models.Payment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newWebhookService(payRepo, &mockReservationRepo{}, &mockWebhookRepo{})

	body := chargeSuccessBody("unknown-ref", 100000)
	processed, err := svc.ProcessWebhook(context.Background(), "paystack", body, signBody(body, testWebhookSecret))

	require.NoError(t, err, "unknown references are acknowledged, not errored")
	assert.False(t, processed)
}

func TestProcessWebhook_IgnoresOtherEventTypes(t *testing.T) {
	payRepo := &mockPaymentRepo{
		markSucceededFn: func(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error) {
			t.Fatal("charge.failed must not transition payments")
			return 0, nil
		},
	}
	whRepo := &mockWebhookRepo{}
	svc := newWebhookService(payRepo, &mockReservationRepo{}, whRepo)

	body := []byte(`{"event":"charge.failed","data":{"reference":"local-abc","amount":500000}}`)
	processed, err := svc.ProcessWebhook(context.Background(), "paystack", body, signBody(body, testWebhookSecret))

	require.NoError(t, err)
	assert.False(t, processed)
	require.Len(t, whRepo.records, 1)
	assert.Equal(t, "charge.failed", whRepo.records[0].EventType)
}

func TestProcessWebhook_PaymentWithoutReservation(t *testing.T) {
	payRepo := &mockPaymentRepo{
		markSucceededFn: func(ctx context.Context, tx *gorm.DB, providerRef string, amount int64) (int64, error) {
			return 1, nil
		},
		findByRefFn: func(ctx context.Context, tx *gorm.DB, providerRef string) (*models.Payment, error) {
			return &models.Payment{ID: "pay-1", ProviderRef: providerRef, Status: models.PaymentSuccess}, nil
		},
	}
	resRepo := &mockReservationRepo{}
	svc := newWebhookService(payRepo, resRepo, &mockWebhookRepo{})

	body := chargeSuccessBody("standalone-ref", 250000)
	processed, err := svc.ProcessWebhook(context.Background(), "paystack", body, signBody(body, testWebhookSecret))

	require.NoError(t, err)
	assert.True(t, processed)
	assert.Zero(t, resRepo.setDepositPaidCalls, "no linked reservation to update")
}

// --- Gateway passthrough tests ---

func TestInitializePayment_Success(t *testing.T) {
	gw := &mockGateway{
		initializeFn: func(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error) {
			assert.Equal(t, "student@example.com", email)
			assert.Equal(t, int64(5000), amountMajor)
			return &paystack.InitializeResult{
				AuthorizationURL: "https://checkout.paystack.com/abc123",
				Reference:        "ps_ref_1",
			}, nil
		},
	}
	svc := NewPaymentService(&mockPaymentRepo{}, &mockReservationRepo{}, nil, gw, nil, testWebhookSecret)

	result, err := svc.InitializePayment(context.Background(), "student@example.com", 5000)

	require.NoError(t, err)
	assert.Equal(t, "ps_ref_1", result.Reference)
	assert.Contains(t, result.AuthorizationURL, "checkout.paystack.com")
}

func TestInitializePayment_GatewayError(t *testing.T) {
	gw := &mockGateway{
		initializeFn: func(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error) {
			return nil, errors.New("upstream 503")
		},
	}
	svc := NewPaymentService(&mockPaymentRepo{}, &mockReservationRepo{}, nil, gw, nil, testWebhookSecret)

	_, err := svc.InitializePayment(context.Background(), "student@example.com", 5000)

	assert.ErrorIs(t, err, ErrGateway)
}

func TestInitializePayment_Validation(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, &mockReservationRepo{}, nil, &mockGateway{}, nil, testWebhookSecret)

	_, err := svc.InitializePayment(context.Background(), "", 5000)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.InitializePayment(context.Background(), "student@example.com", 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerifyPayment_Success(t *testing.T) {
	gw := &mockGateway{
		verifyFn: func(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
			return &paystack.VerifyResult{Status: "success", Reference: reference, Amount: 500000}, nil
		},
	}
	svc := NewPaymentService(&mockPaymentRepo{}, &mockReservationRepo{}, nil, gw, nil, testWebhookSecret)

	result, err := svc.VerifyPayment(context.Background(), "ps_ref_1")

	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, int64(500000), result.Amount)
}

func TestVerifyPayment_MissingReference(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, &mockReservationRepo{}, nil, &mockGateway{}, nil, testWebhookSecret)

	_, err := svc.VerifyPayment(context.Background(), "")

	assert.ErrorIs(t, err, ErrValidation)
}
