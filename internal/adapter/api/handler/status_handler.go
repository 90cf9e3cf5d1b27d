package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type StatusHandler struct {
	statusUseCase *usecase.StatusUseCase
}

func NewStatusHandler(statusUseCase *usecase.StatusUseCase) *StatusHandler {
	return &StatusHandler{
		statusUseCase: statusUseCase,
	}
}

type statusRequest struct {
	Descripcion string `json:"descripcion" validate:"required"`
}

func (h *StatusHandler) CreateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	status, err := h.statusUseCase.CreateStatus(c.Request().Context(), req.Descripcion)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, status)
}

func (h *StatusHandler) GetStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	status, err := h.statusUseCase.GetStatusByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}

func (h *StatusHandler) ListStatuses(c echo.Context) error {
	statuses, err := h.statusUseCase.ListStatuses(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, statuses)
}

type updateStatusRequest struct {
	Descripcion *string `json:"descripcion"`
}

func (h *StatusHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	status, err := h.statusUseCase.UpdateStatus(c.Request().Context(), id, req.Descripcion)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}

func (h *StatusHandler) DeleteStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.statusUseCase.DeleteStatus(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
