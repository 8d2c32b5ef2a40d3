// Package route serves fast/eco route comparisons.
package route

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/kilianp07/ecoroute/api"
	"github.com/kilianp07/ecoroute/core/logger"
	"github.com/kilianp07/ecoroute/core/routing"
)

// Planner compares routes between two points.
type Planner interface {
	Plan(ctx context.Context, req routing.Request) (routing.Comparison, error)
}

// Handler exposes POST /api/route.
type Handler struct {
	planner  Planner
	validate *validator.Validate
	log      logger.Logger
}

// NewHandler injects the planner.
func NewHandler(p Planner, log logger.Logger) *Handler {
	return &Handler{planner: p, validate: validator.New(), log: log}
}

// RegisterRoutes implements api.Routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/route", h.Compare)
}

// Compare returns the time- and eco-optimized routes with their estimates.
func (h *Handler) Compare(c echo.Context) error {
	var p ComparePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
	}
	if err := h.validate.Struct(p); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
	}
	cmp, err := h.planner.Plan(c.Request().Context(), p.Request())
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, cmp)
	case errors.Is(err, routing.ErrNoRoute):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no route between source and destination"})
	case errors.Is(err, routing.ErrRouting):
		h.log.Warnf("route comparison: %v", err)
		return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: "routing service unavailable"})
	default:
		h.log.Errorf("route comparison: %v", err)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "route comparison failed"})
	}
}
