package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type WorkerProfessionHandler struct {
	grantUseCase *usecase.WorkerProfessionUseCase
}

func NewWorkerProfessionHandler(grantUseCase *usecase.WorkerProfessionUseCase) *WorkerProfessionHandler {
	return &WorkerProfessionHandler{
		grantUseCase: grantUseCase,
	}
}

type createWorkerProfessionRequest struct {
	IDTrabajador int64   `json:"id_trabajador" validate:"required"`
	IDProfesion  int64   `json:"id_profesion" validate:"required"`
	Matricula    *string `json:"matricula"`
}

func (h *WorkerProfessionHandler) CreateGrant(c echo.Context) error {
	var req createWorkerProfessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	grant, err := h.grantUseCase.CreateGrant(c.Request().Context(), usecase.CreateWorkerProfessionInput{
		WorkerID:     req.IDTrabajador,
		ProfessionID: req.IDProfesion,
		Matricula:    req.Matricula,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, grant)
}

func (h *WorkerProfessionHandler) GetGrant(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	grant, err := h.grantUseCase.GetGrantByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, grant)
}

func (h *WorkerProfessionHandler) ListGrants(c echo.Context) error {
	workerID, err := queryInt64(c, "trabajador")
	if err != nil {
		return response.Error(c, err)
	}

	grants, err := h.grantUseCase.ListGrants(c.Request().Context(), workerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, grants)
}

type updateWorkerProfessionRequest struct {
	Matricula *string `json:"matricula"`
}

func (h *WorkerProfessionHandler) UpdateGrant(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateWorkerProfessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	grant, err := h.grantUseCase.UpdateGrant(c.Request().Context(), id, usecase.UpdateWorkerProfessionInput{
		Matricula: req.Matricula,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, grant)
}

func (h *WorkerProfessionHandler) DeleteGrant(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.grantUseCase.DeleteGrant(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
