package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"splybob/internal/services"
)

type LeadHandler struct {
	leads services.LeadService
}

func NewLeadHandler(leads services.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

func (h *LeadHandler) List(c echo.Context) error {
	filters := services.LeadFilters{
		Status:     c.QueryParam("status"),
		Priority:   c.QueryParam("priority"),
		Source:     c.QueryParam("source"),
		AssignedTo: c.QueryParam("assignedTo"),
		Search:     c.QueryParam("search"),
	}
	leads, err := h.leads.List(c.Request().Context(), filters)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"leads": leads})
}

func (h *LeadHandler) Create(c echo.Context) error {
	var req services.LeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	lead, err := h.leads.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Lead created successfully", "lead": lead})
}

func (h *LeadHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid lead ID"})
	}
	var req services.LeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	lead, err := h.leads.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Lead not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Lead updated successfully", "lead": lead})
}
