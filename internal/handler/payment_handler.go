package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/webhook/:provider", h.HandleWebhook)
	g.POST("/initialize", h.InitializePayment)
	g.GET("/verify", h.VerifyPayment)
}

// HandleWebhook acknowledges every authenticated delivery with 200 so the
// provider stops retrying; only a signature failure earns a 400.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	provider := c.Param("provider")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
	}
	signature := c.Request().Header.Get("x-" + provider + "-signature")

	if _, err := h.svc.ProcessWebhook(c.Request().Context(), provider, body, signature); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process webhook")
	}

	return c.JSON(http.StatusOK, dto.WebhookAckResponse{Received: true})
}

func (h *PaymentHandler) InitializePayment(c echo.Context) error {
	var req dto.InitializePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.svc.InitializePayment(c.Request().Context(), req.Email, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrGateway):
			return echo.NewHTTPError(http.StatusBadGateway, "failed to initialize payment")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to initialize payment")
		}
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	result, err := h.svc.VerifyPayment(c.Request().Context(), c.QueryParam("reference"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrGateway):
			return echo.NewHTTPError(http.StatusBadGateway, "failed to verify payment")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to verify payment")
		}
	}

	return c.JSON(http.StatusOK, result)
}
