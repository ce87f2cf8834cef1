package handler

import (
	"errors"
	"net/http"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(bookings *echo.Group, inspections *echo.Group) {
	bookings.POST("", h.CreateBooking)
	inspections.POST("", h.CreateInspection)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create booking")
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) CreateInspection(c echo.Context) error {
	var req dto.CreateInspectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	inspection, err := h.svc.CreateInspection(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create inspection")
	}
	return c.JSON(http.StatusCreated, inspection)
}
