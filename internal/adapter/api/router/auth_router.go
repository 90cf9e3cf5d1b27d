package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
	"reparex/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes the Firebase identity bridge routes. Login
// carries the token in the body; register expects a Bearer header.
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/api/auth/firebase-login", authHandler.FirebaseLogin)

	protected := e.Group("/api/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/firebase-register", authHandler.FirebaseRegister)
}
