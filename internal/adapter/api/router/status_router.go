package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupStatusRouter(e *echo.Echo) {
	statusHandler := handler.GetStatusHandler()

	statuses := e.Group("/api/estados")
	statuses.POST("", statusHandler.CreateStatus)
	statuses.GET("", statusHandler.ListStatuses)
	statuses.GET("/:id", statusHandler.GetStatus)
	statuses.PATCH("/:id", statusHandler.UpdateStatus)
	statuses.DELETE("/:id", statusHandler.DeleteStatus)
}
