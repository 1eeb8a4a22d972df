package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"splybob/internal/common"
	"splybob/internal/services"
)

type InventoryHandler struct {
	inventory services.InventoryService
}

func NewInventoryHandler(inventory services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// List handles GET /api/inventory. Supplier callers only ever see their own
// items regardless of the supplier query parameter.
func (h *InventoryHandler) List(c echo.Context) error {
	filters := services.InventoryFilters{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
		Location: c.QueryParam("location"),
		Supplier: c.QueryParam("supplier"),
		Search:   c.QueryParam("search"),
	}
	items, err := h.inventory.List(c.Request().Context(), common.IdentityFromContext(c), filters)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *InventoryHandler) Create(c echo.Context) error {
	var req services.CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	item, err := h.inventory.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Item created successfully", "item": item})
}

func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid item ID"})
	}
	var req services.CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	item, err := h.inventory.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Item updated successfully", "item": item})
}

func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid item ID"})
	}
	if err := h.inventory.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Item deleted successfully"})
}
