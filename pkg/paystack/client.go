package paystack

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the Paystack REST API. The API takes and returns amounts
// in the minor currency unit (kobo); Initialize converts from major units so
// callers never deal with the x100 factor.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, secretKey string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(secretKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &Client{http: c}
}

type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyResult struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"` // minor units
}

type initializeResponse struct {
	Status  bool             `json:"status"`
	Message string           `json:"message"`
	Data    InitializeResult `json:"data"`
}

type verifyResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    VerifyResult `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, email string, amountMajor int64) (*InitializeResult, error) {
	var out initializeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"email": email, "amount": amountMajor * 100}).
		SetResult(&out).
		SetError(&out).
		Post("/transaction/initialize")
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: %w", err)
	}
	if resp.IsError() || !out.Status {
		return nil, fmt.Errorf("paystack initialize failed: %s", responseMessage(resp.Status(), out.Message))
	}
	return &out.Data, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	var out verifyResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get("/transaction/verify/" + reference)
	if err != nil {
		return nil, fmt.Errorf("paystack verify: %w", err)
	}
	if resp.IsError() || !out.Status {
		return nil, fmt.Errorf("paystack verify failed: %s", responseMessage(resp.Status(), out.Message))
	}
	return &out.Data, nil
}

func responseMessage(httpStatus, message string) string {
	if message != "" {
		return message
	}
	return httpStatus
}
