package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/domain/entity"
	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type zoneRequest struct {
	Calle     string `json:"calle" validate:"required"`
	Ciudad    string `json:"ciudad"`
	Provincia string `json:"provincia"`
}

type firebaseLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

type firebaseLoginResponse struct {
	Registered  bool           `json:"registrado"`
	Client      *entity.Client `json:"contratador,omitempty"`
	FirebaseUID string         `json:"uid_firebase,omitempty"`
	Email       string         `json:"email,omitempty"`
}

func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req firebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Token)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, firebaseLoginResponse{
		Registered:  result.Registered,
		Client:      result.Client,
		FirebaseUID: result.FirebaseUID,
		Email:       result.Email,
	})
}

type firebaseRegisterRequest struct {
	Nombre         string      `json:"nombre" validate:"required"`
	Apellido       string      `json:"apellido"`
	Email          string      `json:"email" validate:"omitempty,email"`
	Telefono       string      `json:"telefono"`
	DNI            string      `json:"dni"`
	ZonaGeografica zoneRequest `json:"zona_geografica" validate:"required"`
}

func (h *AuthHandler) FirebaseRegister(c echo.Context) error {
	var req firebaseRegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// Identity was verified by the auth middleware.
	uid := c.Get("uid").(string)
	email, _ := c.Get("email").(string)

	client, err := h.authUseCase.Register(c.Request().Context(), uid, email, usecase.RegisterInput{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Telefono: req.Telefono,
		DNI:      req.DNI,
		Zone: entity.Zone{
			Calle:     req.ZonaGeografica.Calle,
			Ciudad:    req.ZonaGeografica.Ciudad,
			Provincia: req.ZonaGeografica.Provincia,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, client)
}
