package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type RatingHandler struct {
	ratingUseCase *usecase.RatingUseCase
}

func NewRatingHandler(ratingUseCase *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

type createRatingRequest struct {
	IDContratador int64   `json:"id_contratador" validate:"required"`
	IDTrabajador  int64   `json:"id_trabajador" validate:"required"`
	IDTrabajo     int64   `json:"id_trabajo" validate:"required"`
	Puntuacion    float64 `json:"puntuacion" validate:"required,gte=1,lte=5"`
	Comentario    string  `json:"comentario"`
}

func (h *RatingHandler) bindRatingInput(c echo.Context) (*usecase.CreateRatingInput, error) {
	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.BadRequest("Invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &usecase.CreateRatingInput{
		ClientID:   req.IDContratador,
		WorkerID:   req.IDTrabajador,
		JobID:      req.IDTrabajo,
		Puntuacion: req.Puntuacion,
		Comentario: req.Comentario,
	}, nil
}

func (h *RatingHandler) CreateWorkerRating(c echo.Context) error {
	input, err := h.bindRatingInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	rating, err := h.ratingUseCase.CreateWorkerRating(c.Request().Context(), *input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, rating)
}

func (h *RatingHandler) CreateClientRating(c echo.Context) error {
	input, err := h.bindRatingInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	rating, err := h.ratingUseCase.CreateClientRating(c.Request().Context(), *input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, rating)
}

func (h *RatingHandler) GetWorkerRating(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	rating, err := h.ratingUseCase.GetWorkerRatingByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rating)
}

func (h *RatingHandler) GetClientRating(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	rating, err := h.ratingUseCase.GetClientRatingByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rating)
}

func (h *RatingHandler) ListWorkerRatings(c echo.Context) error {
	ratings, err := h.ratingUseCase.ListWorkerRatings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ratings)
}

func (h *RatingHandler) ListClientRatings(c echo.Context) error {
	ratings, err := h.ratingUseCase.ListClientRatings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ratings)
}

// ListCombinedRatings serves the read-only merged feed of both kinds.
func (h *RatingHandler) ListCombinedRatings(c echo.Context) error {
	combined, err := h.ratingUseCase.ListCombinedRatings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, combined)
}

// Ratings are append-only; edits and removals are rejected.
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	return response.Error(c, errors.MethodNotAllowed("Ratings cannot be updated"))
}

func (h *RatingHandler) DeleteRating(c echo.Context) error {
	return response.Error(c, errors.MethodNotAllowed("Ratings cannot be deleted"))
}
