package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupWorkerRouter(e *echo.Echo) {
	workerHandler := handler.GetWorkerHandler()

	workers := e.Group("/api/trabajadores")
	workers.POST("", workerHandler.CreateWorker)
	workers.GET("", workerHandler.ListWorkers)
	workers.GET("/:id", workerHandler.GetWorker)
	workers.PATCH("/:id", workerHandler.UpdateWorker)
	workers.DELETE("/:id", workerHandler.DeleteWorker)
}
