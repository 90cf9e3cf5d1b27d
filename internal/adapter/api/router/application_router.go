package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupApplicationRouter(e *echo.Echo) {
	applicationHandler := handler.GetApplicationHandler()

	applications := e.Group("/api/postulaciones")
	applications.POST("", applicationHandler.CreateApplication)
	applications.GET("", applicationHandler.ListApplications)
	applications.GET("/:id", applicationHandler.GetApplication)
	applications.PATCH("/:id", applicationHandler.UpdateApplication)
	applications.DELETE("/:id", applicationHandler.DeleteApplication)
}
