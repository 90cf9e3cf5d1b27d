package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type WorkerHandler struct {
	workerUseCase *usecase.WorkerUseCase
}

func NewWorkerHandler(workerUseCase *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{
		workerUseCase: workerUseCase,
	}
}

type createWorkerRequest struct {
	IDContratador    int64        `json:"id_contratador" validate:"required"`
	IDZonaGeografica *int64       `json:"id_zona_geografica"`
	ZonaGeografica   *zoneRequest `json:"zona_geografica"`
	Telefono         string       `json:"telefono"`
	Email            string       `json:"email" validate:"omitempty,email"`
}

func (h *WorkerHandler) CreateWorker(c echo.Context) error {
	var req createWorkerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateWorkerInput{
		ClientID: req.IDContratador,
		ZoneID:   req.IDZonaGeografica,
		Telefono: req.Telefono,
		Email:    req.Email,
	}
	if req.ZonaGeografica != nil {
		input.Zone = &usecase.ZoneInput{
			Calle:     req.ZonaGeografica.Calle,
			Ciudad:    req.ZonaGeografica.Ciudad,
			Provincia: req.ZonaGeografica.Provincia,
		}
	}

	worker, err := h.workerUseCase.CreateWorker(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, worker)
}

func (h *WorkerHandler) GetWorker(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	worker, err := h.workerUseCase.GetWorkerByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, worker)
}

func (h *WorkerHandler) ListWorkers(c echo.Context) error {
	clientID, err := queryInt64(c, "contratador")
	if err != nil {
		return response.Error(c, err)
	}

	workers, err := h.workerUseCase.ListWorkers(c.Request().Context(), clientID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, workers)
}

type updateWorkerRequest struct {
	IDZonaGeografica *int64  `json:"id_zona_geografica"`
	Telefono         *string `json:"telefono"`
	Email            *string `json:"email" validate:"omitempty,email"`
}

func (h *WorkerHandler) UpdateWorker(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateWorkerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	worker, err := h.workerUseCase.UpdateWorker(c.Request().Context(), id, usecase.UpdateWorkerInput{
		ZoneID:   req.IDZonaGeografica,
		Telefono: req.Telefono,
		Email:    req.Email,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, worker)
}

func (h *WorkerHandler) DeleteWorker(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.workerUseCase.DeleteWorker(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
