package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupClientRouter(e *echo.Echo) {
	clientHandler := handler.GetClientHandler()

	clients := e.Group("/api/contratadores")
	clients.POST("", clientHandler.CreateClient)
	clients.GET("", clientHandler.ListClients)
	clients.GET("/:id", clientHandler.GetClient)
	clients.PATCH("/:id", clientHandler.UpdateClient)
	clients.DELETE("/:id", clientHandler.DeleteClient)
}
