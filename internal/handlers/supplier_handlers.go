package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"splybob/internal/services"
)

type SupplierHandler struct {
	suppliers services.SupplierService
}

func NewSupplierHandler(suppliers services.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

func (h *SupplierHandler) List(c echo.Context) error {
	filters := services.SupplierFilters{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	suppliers, err := h.suppliers.List(c.Request().Context(), filters)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"suppliers": suppliers})
}

// Provision handles POST /api/suppliers: the supplier profile and its login
// user are created together, or not at all.
func (h *SupplierHandler) Provision(c echo.Context) error {
	var req services.ProvisionSupplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	supplier, err := h.suppliers.Provision(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Supplier created successfully", "supplier": supplier})
}

func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid supplier ID"})
	}
	var req services.UpdateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	supplier, err := h.suppliers.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Supplier updated successfully", "supplier": supplier})
}
