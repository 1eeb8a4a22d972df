package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"splybob/internal/common"
	"splybob/internal/services"
)

type OrderHandler struct {
	orders services.OrderService
}

func NewOrderHandler(orders services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /api/purchase-orders, newest first. Supplier callers are
// pinned to their own orders.
func (h *OrderHandler) List(c echo.Context) error {
	filters := services.OrderFilters{
		Status:     c.QueryParam("status"),
		Supplier:   c.QueryParam("supplier"),
		AssignedTo: c.QueryParam("assignedTo"),
	}
	orders, err := h.orders.List(c.Request().Context(), common.IdentityFromContext(c), filters)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req services.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	order, err := h.orders.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Purchase order created successfully", "order": order})
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}
	order, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Purchase order not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"order": order})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/purchase-orders/:id. Moving an order to
// Delivered stamps its actual delivery date.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid purchase order ID"})
	}
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.orders.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Purchase order not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Purchase order updated successfully"})
}
