package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/service"
	"github.com/hostellink/backend/pkg/paystack"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock PaymentService ---

type mockPaymentService struct {
	processFn    func(ctx context.Context, provider string, body []byte, signature string) (bool, error)
	initializeFn func(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error)
	verifyFn     func(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

func (m *mockPaymentService) ProcessWebhook(ctx context.Context, provider string, body []byte, signature string) (bool, error) {
	return m.processFn(ctx, provider, body, signature)
}

func (m *mockPaymentService) InitializePayment(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error) {
	return m.initializeFn(ctx, email, amountMajor)
}

func (m *mockPaymentService) VerifyPayment(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
	return m.verifyFn(ctx, reference)
}

// --- Tests ---

func TestHandleWebhook_AcknowledgesDelivery(t *testing.T) {
	var gotProvider, gotSignature string
	var gotBody []byte
	svc := &mockPaymentService{
		processFn: func(ctx context.Context, provider string, body []byte, signature string) (bool, error) {
			gotProvider, gotBody, gotSignature = provider, body, signature
			return true, nil
		},
	}

	e := echo.New()
	body := []byte(`{"event":"charge.success","data":{"reference":"local-abc","amount":500000}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook/paystack", bytes.NewReader(body))
	req.Header.Set("x-paystack-signature", "aabbcc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("paystack")

	err := NewPaymentHandler(svc).HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paystack", gotProvider)
	assert.Equal(t, "aabbcc", gotSignature)
	assert.Equal(t, body, gotBody, "service must receive the raw body for signature verification")

	var resp dto.WebhookAckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Received)
}

func TestHandleWebhook_NoOpStillAcknowledged(t *testing.T) {
	svc := &mockPaymentService{
		processFn: func(ctx context.Context, provider string, body []byte, signature string) (bool, error) {
			return false, nil // replay or unknown reference
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook/paystack", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("paystack")

	err := NewPaymentHandler(svc).HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleWebhook_InvalidSignature(t *testing.T) {
	svc := &mockPaymentService{
		processFn: func(ctx context.Context, provider string, body []byte, signature string) (bool, error) {
			return false, service.ErrInvalidSignature
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook/paystack", strings.NewReader(`{}`))
	req.Header.Set("x-paystack-signature", "forged")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("paystack")

	err := NewPaymentHandler(svc).HandleWebhook(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestInitializePayment_Handler_Success(t *testing.T) {
	svc := &mockPaymentService{
		initializeFn: func(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error) {
			return &paystack.InitializeResult{
				AuthorizationURL: "https://checkout.paystack.com/xyz",
				Reference:        "ps_ref_9",
			}, nil
		},
	}

	e := echo.New()
	body := `{"email":"student@example.com","amount":5000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/initialize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPaymentHandler(svc).InitializePayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp paystack.InitializeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ps_ref_9", resp.Reference)
}

func TestInitializePayment_Handler_GatewayError(t *testing.T) {
	svc := &mockPaymentService{
		initializeFn: func(ctx context.Context, email string, amountMajor int64) (*paystack.InitializeResult, error) {
			return nil, service.ErrGateway
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/initialize", strings.NewReader(`{"email":"a@b.c","amount":100}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPaymentHandler(svc).InitializePayment(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
}

func TestVerifyPayment_Handler_Success(t *testing.T) {
	svc := &mockPaymentService{
		verifyFn: func(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
			assert.Equal(t, "ps_ref_9", reference)
			return &paystack.VerifyResult{Status: "success", Reference: reference, Amount: 500000}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/verify?reference=ps_ref_9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPaymentHandler(svc).VerifyPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyPayment_Handler_MissingReference(t *testing.T) {
	svc := &mockPaymentService{
		verifyFn: func(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
			return nil, service.ErrValidation
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPaymentHandler(svc).VerifyPayment(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
