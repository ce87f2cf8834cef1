package handler

import (
	"errors"
	"net/http"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type HostelHandler struct {
	svc service.HostelService
}

func NewHostelHandler(svc service.HostelService) *HostelHandler {
	return &HostelHandler{svc: svc}
}

func (h *HostelHandler) RegisterRoutes(hostels *echo.Group, admin *echo.Group) {
	hostels.GET("", h.ListHostels)
	hostels.GET("/:id", h.GetHostel)
	hostels.POST("", h.SubmitHostel)

	admin.GET("/hostels", h.ListUnverified)
	admin.PATCH("/hostels/:id", h.SetVerified)
}

func (h *HostelHandler) ListHostels(c echo.Context) error {
	hostels, err := h.svc.ListApproved(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch hostels")
	}
	return c.JSON(http.StatusOK, hostels)
}

func (h *HostelHandler) GetHostel(c echo.Context) error {
	hostel, err := h.svc.GetHostel(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHostelNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch hostel")
	}
	return c.JSON(http.StatusOK, hostel)
}

func (h *HostelHandler) SubmitHostel(c echo.Context) error {
	var req dto.CreateHostelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.CaretakerID == "" || req.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name, caretaker_id and price (>0) are required")
	}

	hostel, err := h.svc.SubmitHostel(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to submit hostel")
	}
	return c.JSON(http.StatusCreated, hostel)
}

func (h *HostelHandler) ListUnverified(c echo.Context) error {
	hostels, err := h.svc.ListUnverified(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch hostels")
	}
	return c.JSON(http.StatusOK, hostels)
}

func (h *HostelHandler) SetVerified(c echo.Context) error {
	var req dto.VerifyHostelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.IsVerified == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "is_verified is required")
	}

	hostel, err := h.svc.SetVerified(c.Request().Context(), c.Param("id"), *req.IsVerified)
	if err != nil {
		if errors.Is(err, service.ErrHostelNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update hostel")
	}
	return c.JSON(http.StatusOK, hostel)
}
