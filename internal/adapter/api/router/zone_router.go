package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupZoneRouter(e *echo.Echo) {
	zoneHandler := handler.GetZoneHandler()

	zones := e.Group("/api/zonas-geograficas")
	zones.POST("", zoneHandler.CreateZone)
	zones.GET("", zoneHandler.ListZones)
	zones.GET("/:id", zoneHandler.GetZone)
	zones.PATCH("/:id", zoneHandler.UpdateZone)
	zones.DELETE("/:id", zoneHandler.DeleteZone)
}
