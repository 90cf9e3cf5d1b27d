package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type ProfessionHandler struct {
	professionUseCase *usecase.ProfessionUseCase
}

func NewProfessionHandler(professionUseCase *usecase.ProfessionUseCase) *ProfessionHandler {
	return &ProfessionHandler{
		professionUseCase: professionUseCase,
	}
}

type professionRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

func (h *ProfessionHandler) CreateProfession(c echo.Context) error {
	var req professionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profession, err := h.professionUseCase.CreateProfession(c.Request().Context(), req.Nombre)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, profession)
}

func (h *ProfessionHandler) GetProfession(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	profession, err := h.professionUseCase.GetProfessionByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profession)
}

func (h *ProfessionHandler) ListProfessions(c echo.Context) error {
	professions, err := h.professionUseCase.ListProfessions(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, professions)
}

type updateProfessionRequest struct {
	Nombre *string `json:"nombre"`
}

func (h *ProfessionHandler) UpdateProfession(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateProfessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	profession, err := h.professionUseCase.UpdateProfession(c.Request().Context(), id, req.Nombre)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profession)
}

func (h *ProfessionHandler) DeleteProfession(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.professionUseCase.DeleteProfession(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
