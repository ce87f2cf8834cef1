package handler

import (
	"errors"
	"net/http"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateReservation)
	g.GET("/:id", h.GetReservation)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, payment, err := h.svc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create reservation")
	}

	return c.JSON(http.StatusCreated, dto.ReservationCreatedResponse{
		Reservation: reservation,
		Payment:     payment,
	})
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	reservation, err := h.svc.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch reservation")
	}

	return c.JSON(http.StatusOK, reservation)
}
