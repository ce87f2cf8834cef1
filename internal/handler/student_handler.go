package handler

import (
	"errors"
	"net/http"

	"github.com/hostellink/backend/internal/dto"
	"github.com/hostellink/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type StudentHandler struct {
	svc service.StudentService
}

func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

func (h *StudentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Register)
	g.GET("/:id", h.GetStudent)
}

func (h *StudentHandler) Register(c echo.Context) error {
	var req dto.CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	student, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to register student")
	}
	return c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) GetStudent(c echo.Context) error {
	student, err := h.svc.GetStudent(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch student")
	}
	return c.JSON(http.StatusOK, student)
}
