package router

import (
	"github.com/labstack/echo/v4"

	"reparex/internal/adapter/api/handler"
)

func SetupRatingRouter(e *echo.Echo) {
	ratingHandler := handler.GetRatingHandler()

	// Combined read-only feed of both rating directions.
	e.GET("/api/calificaciones", ratingHandler.ListCombinedRatings)

	workerRatings := e.Group("/api/calificaciones/calificaciones-trabajadores")
	workerRatings.POST("", ratingHandler.CreateWorkerRating)
	workerRatings.GET("", ratingHandler.ListWorkerRatings)
	workerRatings.GET("/:id", ratingHandler.GetWorkerRating)
	workerRatings.PATCH("/:id", ratingHandler.UpdateRating)
	workerRatings.DELETE("/:id", ratingHandler.DeleteRating)

	clientRatings := e.Group("/api/calificaciones/calificaciones-contratadores")
	clientRatings.POST("", ratingHandler.CreateClientRating)
	clientRatings.GET("", ratingHandler.ListClientRatings)
	clientRatings.GET("/:id", ratingHandler.GetClientRating)
	clientRatings.PATCH("/:id", ratingHandler.UpdateRating)
	clientRatings.DELETE("/:id", ratingHandler.DeleteRating)
}
