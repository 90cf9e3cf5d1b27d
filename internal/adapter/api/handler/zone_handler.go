package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type ZoneHandler struct {
	zoneUseCase *usecase.ZoneUseCase
}

func NewZoneHandler(zoneUseCase *usecase.ZoneUseCase) *ZoneHandler {
	return &ZoneHandler{
		zoneUseCase: zoneUseCase,
	}
}

func (h *ZoneHandler) CreateZone(c echo.Context) error {
	var req zoneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	zone, err := h.zoneUseCase.CreateZone(c.Request().Context(), usecase.ZoneInput{
		Calle:     req.Calle,
		Ciudad:    req.Ciudad,
		Provincia: req.Provincia,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, zone)
}

func (h *ZoneHandler) GetZone(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	zone, err := h.zoneUseCase.GetZoneByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, zone)
}

func (h *ZoneHandler) ListZones(c echo.Context) error {
	zones, err := h.zoneUseCase.ListZones(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, zones)
}

type updateZoneRequest struct {
	Calle     *string `json:"calle"`
	Ciudad    *string `json:"ciudad"`
	Provincia *string `json:"provincia"`
}

func (h *ZoneHandler) UpdateZone(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	zone, err := h.zoneUseCase.UpdateZone(c.Request().Context(), id, usecase.UpdateZoneInput{
		Calle:     req.Calle,
		Ciudad:    req.Ciudad,
		Provincia: req.Provincia,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, zone)
}

func (h *ZoneHandler) DeleteZone(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.zoneUseCase.DeleteZone(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
