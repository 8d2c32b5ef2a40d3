// Package predict serves single-trip estimates and the health probe.
package predict

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/kilianp07/ecoroute/api"
	"github.com/kilianp07/ecoroute/core/features"
	"github.com/kilianp07/ecoroute/core/logger"
	"github.com/kilianp07/ecoroute/core/prediction"
)

// Handler exposes POST /predict and GET /healthz.
type Handler struct {
	pred     prediction.Predictor
	validate *validator.Validate
	log      logger.Logger
}

// NewHandler injects the predictor.
func NewHandler(pred prediction.Predictor, log logger.Logger) *Handler {
	return &Handler{pred: pred, validate: validator.New(), log: log}
}

// RegisterRoutes implements api.Routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/predict", h.Predict)
	e.GET("/healthz", h.Health)
}

// Predict binds and validates a TripPayload and returns the estimate.
func (h *Handler) Predict(c echo.Context) error {
	var p TripPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
	}
	if err := h.validate.Struct(p); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
	}
	res, err := h.pred.Predict(c.Request().Context(), p.Trip())
	if err != nil {
		h.log.Errorf("predict: %v", err)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "prediction failed"})
	}
	return c.JSON(http.StatusOK, res)
}

// HealthResponse reports readiness and the served feature contract.
type HealthResponse struct {
	Status   string `json:"status"`
	Contract string `json:"contract"`
}

// Health answers once the model is loaded, which is always the case for a
// constructed handler.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Contract: features.Contract})
}
