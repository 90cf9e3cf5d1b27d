package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"reparex/internal/usecase"
	"reparex/pkg/errors"
)

var (
	authHandler             *AuthHandler
	zoneHandler             *ZoneHandler
	professionHandler       *ProfessionHandler
	statusHandler           *StatusHandler
	clientHandler           *ClientHandler
	workerHandler           *WorkerHandler
	workerProfessionHandler *WorkerProfessionHandler
	jobHandler              *JobHandler
	applicationHandler      *ApplicationHandler
	ratingHandler           *RatingHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	zoneUseCase *usecase.ZoneUseCase,
	professionUseCase *usecase.ProfessionUseCase,
	statusUseCase *usecase.StatusUseCase,
	clientUseCase *usecase.ClientUseCase,
	workerUseCase *usecase.WorkerUseCase,
	workerProfessionUseCase *usecase.WorkerProfessionUseCase,
	jobUseCase *usecase.JobUseCase,
	applicationUseCase *usecase.ApplicationUseCase,
	ratingUseCase *usecase.RatingUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	zoneHandler = NewZoneHandler(zoneUseCase)
	professionHandler = NewProfessionHandler(professionUseCase)
	statusHandler = NewStatusHandler(statusUseCase)
	clientHandler = NewClientHandler(clientUseCase)
	workerHandler = NewWorkerHandler(workerUseCase)
	workerProfessionHandler = NewWorkerProfessionHandler(workerProfessionUseCase)
	jobHandler = NewJobHandler(jobUseCase)
	applicationHandler = NewApplicationHandler(applicationUseCase)
	ratingHandler = NewRatingHandler(ratingUseCase)
}

func GetAuthHandler() *AuthHandler                         { return authHandler }
func GetZoneHandler() *ZoneHandler                         { return zoneHandler }
func GetProfessionHandler() *ProfessionHandler             { return professionHandler }
func GetStatusHandler() *StatusHandler                     { return statusHandler }
func GetClientHandler() *ClientHandler                     { return clientHandler }
func GetWorkerHandler() *WorkerHandler                     { return workerHandler }
func GetWorkerProfessionHandler() *WorkerProfessionHandler { return workerProfessionHandler }
func GetJobHandler() *JobHandler                           { return jobHandler }
func GetApplicationHandler() *ApplicationHandler           { return applicationHandler }
func GetRatingHandler() *RatingHandler                     { return ratingHandler }

// parseID reads the numeric :id path parameter.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.BadRequest("Invalid id", err)
	}
	return id, nil
}

// queryInt64 reads an optional numeric query parameter, nil when absent.
func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.BadRequest("Invalid "+name+" filter", err)
	}
	return &value, nil
}
