package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
	"reparex/pkg/response"
)

type JobHandler struct {
	jobUseCase *usecase.JobUseCase
}

func NewJobHandler(jobUseCase *usecase.JobUseCase) *JobHandler {
	return &JobHandler{
		jobUseCase: jobUseCase,
	}
}

type createJobRequest struct {
	IDContratador    int64        `json:"id_contratador" validate:"required"`
	IDProfesion      int64        `json:"id_profesion" validate:"required"`
	IDZonaGeografica *int64       `json:"id_zona_geografica"`
	ZonaGeografica   *zoneRequest `json:"zona_geografica"`
	Titulo           string       `json:"titulo"`
	Descripcion      string       `json:"descripcion" validate:"required"`
	FechaInicio      *time.Time   `json:"fecha_inicio"`
	FechaFin         *time.Time   `json:"fecha_fin"`
}

func (h *JobHandler) CreateJob(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateJobInput{
		ClientID:     req.IDContratador,
		ProfessionID: req.IDProfesion,
		ZoneID:       req.IDZonaGeografica,
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		FechaInicio:  req.FechaInicio,
		FechaFin:     req.FechaFin,
	}
	if req.ZonaGeografica != nil {
		input.Zone = &usecase.ZoneInput{
			Calle:     req.ZonaGeografica.Calle,
			Ciudad:    req.ZonaGeografica.Ciudad,
			Provincia: req.ZonaGeografica.Provincia,
		}
	}

	job, err := h.jobUseCase.CreateJob(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, job)
}

func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	job, err := h.jobUseCase.GetJobByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}

func (h *JobHandler) ListJobs(c echo.Context) error {
	clientID, err := queryInt64(c, "contratador")
	if err != nil {
		return response.Error(c, err)
	}

	professionIDs, err := parseProfessionFilter(c.QueryParam("profesiones"))
	if err != nil {
		return response.Error(c, err)
	}

	jobs, err := h.jobUseCase.ListJobs(c.Request().Context(), usecase.ListJobsInput{
		ClientID:      clientID,
		FirebaseUID:   c.QueryParam("uid_firebase"),
		ProfessionIDs: professionIDs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, jobs)
}

// parseProfessionFilter parses the comma separated ?profesiones=2,5 filter.
func parseProfessionFilter(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.BadRequest("Invalid profesiones filter", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type updateJobRequest struct {
	IDTrabajador     *int64     `json:"id_trabajador"`
	IDProfesion      *int64     `json:"id_profesion"`
	IDZonaGeografica *int64     `json:"id_zona_geografica"`
	IDEstado         *int64     `json:"id_estado"`
	Titulo           *string    `json:"titulo"`
	Descripcion      *string    `json:"descripcion"`
	FechaInicio      *time.Time `json:"fecha_inicio"`
	FechaFin         *time.Time `json:"fecha_fin"`
}

func (h *JobHandler) UpdateJob(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	job, err := h.jobUseCase.UpdateJob(c.Request().Context(), id, usecase.UpdateJobInput{
		WorkerID:     req.IDTrabajador,
		ProfessionID: req.IDProfesion,
		ZoneID:       req.IDZonaGeografica,
		StatusID:     req.IDEstado,
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		FechaInicio:  req.FechaInicio,
		FechaFin:     req.FechaFin,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}

func (h *JobHandler) DeleteJob(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.jobUseCase.DeleteJob(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
