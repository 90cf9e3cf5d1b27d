package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reparex/internal/infrastructure/database"
)

type HealthHandler struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

func SetupHealthHandler(db *database.DB) {
	healthHandler = NewHealthHandler(db)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

var healthHandler *HealthHandler

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckDatabaseHealth(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Database connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Database connected successfully",
	})
}
