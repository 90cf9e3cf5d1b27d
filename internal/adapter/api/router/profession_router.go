package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupProfessionRouter(e *echo.Echo) {
	professionHandler := handler.GetProfessionHandler()

	professions := e.Group("/api/profesiones")
	professions.POST("", professionHandler.CreateProfession)
	professions.GET("", professionHandler.ListProfessions)
	professions.GET("/:id", professionHandler.GetProfession)
	professions.PATCH("/:id", professionHandler.UpdateProfession)
	professions.DELETE("/:id", professionHandler.DeleteProfession)
}
