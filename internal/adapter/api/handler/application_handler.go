package handler

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type ApplicationHandler struct {
	applicationUseCase *usecase.ApplicationUseCase
}

func NewApplicationHandler(applicationUseCase *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: applicationUseCase,
	}
}

type createApplicationRequest struct {
	IDTrabajo    int64 `json:"id_trabajo" validate:"required"`
	IDTrabajador int64 `json:"id_trabajador" validate:"required"`
}

func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	application, err := h.applicationUseCase.CreateApplication(c.Request().Context(), usecase.CreateApplicationInput{
		JobID:    req.IDTrabajo,
		WorkerID: req.IDTrabajador,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, application)
}

func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	application, err := h.applicationUseCase.GetApplicationByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	jobID, err := queryInt64(c, "trabajo")
	if err != nil {
		return response.Error(c, err)
	}
	workerID, err := queryInt64(c, "trabajador")
	if err != nil {
		return response.Error(c, err)
	}

	applications, err := h.applicationUseCase.ListApplications(c.Request().Context(), jobID, workerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, applications)
}

// UpdateApplication always rejects. Applications are immutable once made;
// withdrawing is a delete, accepting is a job update.
func (h *ApplicationHandler) UpdateApplication(c echo.Context) error {
	return response.Error(c, errors.MethodNotAllowed("Applications cannot be updated"))
}

func (h *ApplicationHandler) DeleteApplication(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.applicationUseCase.DeleteApplication(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
