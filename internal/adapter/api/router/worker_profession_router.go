package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupWorkerProfessionRouter(e *echo.Echo) {
	grantHandler := handler.GetWorkerProfessionHandler()

	grants := e.Group("/api/profesiones-de-trabajadores")
	grants.POST("", grantHandler.CreateGrant)
	grants.GET("", grantHandler.ListGrants)
	grants.GET("/:id", grantHandler.GetGrant)
	grants.PATCH("/:id", grantHandler.UpdateGrant)
	grants.DELETE("/:id", grantHandler.DeleteGrant)
}
