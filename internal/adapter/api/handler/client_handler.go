package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type ClientHandler struct {
	clientUseCase *usecase.ClientUseCase
}

func NewClientHandler(clientUseCase *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{
		clientUseCase: clientUseCase,
	}
}

type createClientRequest struct {
	IDZonaGeografica *int64       `json:"id_zona_geografica"`
	ZonaGeografica   *zoneRequest `json:"zona_geografica"`
	Nombre           string       `json:"nombre" validate:"required"`
	Apellido         string       `json:"apellido"`
	Email            string       `json:"email" validate:"omitempty,email"`
	Telefono         string       `json:"telefono"`
	DNI              string       `json:"dni"`
	FirebaseUID      *string      `json:"uid_firebase"`
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateClientInput{
		ZoneID:      req.IDZonaGeografica,
		Nombre:      req.Nombre,
		Apellido:    req.Apellido,
		Email:       req.Email,
		Telefono:    req.Telefono,
		DNI:         req.DNI,
		FirebaseUID: req.FirebaseUID,
	}
	if req.ZonaGeografica != nil {
		input.Zone = &usecase.ZoneInput{
			Calle:     req.ZonaGeografica.Calle,
			Ciudad:    req.ZonaGeografica.Ciudad,
			Provincia: req.ZonaGeografica.Provincia,
		}
	}

	client, err := h.clientUseCase.CreateClient(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, client)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	client, err := h.clientUseCase.GetClientByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, client)
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientUseCase.ListClients(c.Request().Context(), c.QueryParam("uid_firebase"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, clients)
}

type updateClientRequest struct {
	IDZonaGeografica *int64  `json:"id_zona_geografica"`
	Nombre           *string `json:"nombre"`
	Apellido         *string `json:"apellido"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Telefono         *string `json:"telefono"`
	DNI              *string `json:"dni"`
}

func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	client, err := h.clientUseCase.UpdateClient(c.Request().Context(), id, usecase.UpdateClientInput{
		ZoneID:   req.IDZonaGeografica,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Telefono: req.Telefono,
		DNI:      req.DNI,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, client)
}

func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.clientUseCase.DeleteClient(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
