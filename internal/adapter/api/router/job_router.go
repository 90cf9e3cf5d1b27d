package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupJobRouter(e *echo.Echo) {
	jobHandler := handler.GetJobHandler()

	jobs := e.Group("/api/trabajos")
	jobs.POST("", jobHandler.CreateJob)
	jobs.GET("", jobHandler.ListJobs)
	jobs.GET("/:id", jobHandler.GetJob)
	jobs.PATCH("/:id", jobHandler.UpdateJob)
	jobs.DELETE("/:id", jobHandler.DeleteJob)
}
