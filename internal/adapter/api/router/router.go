package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupZoneRouter(e)
	SetupProfessionRouter(e)
	SetupStatusRouter(e)
	SetupClientRouter(e)
	SetupWorkerRouter(e)
	SetupWorkerProfessionRouter(e)
	SetupJobRouter(e)
	SetupApplicationRouter(e)
	SetupRatingRouter(e)
	SetupHealthRouter(e)
}
