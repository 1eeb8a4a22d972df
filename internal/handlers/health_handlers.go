package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"splybob/internal/repositories"
)

type HealthHandler struct {
	db repositories.DB
}

func NewHealthHandler(db repositories.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Ready reports whether the store is reachable.
func (h *HealthHandler) Ready(c echo.Context) error {
	if _, err := h.db.Exec(c.Request().Context(), "SELECT 1"); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
