// Package api builds the HTTP surface of the service on labstack/echo.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kilianp07/ecoroute/core/logger"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Routes is implemented by handler groups mounted on the server.
type Routes interface {
	RegisterRoutes(e *echo.Echo)
}

// NewServer returns an echo instance with recovery, CORS and request logging
// installed and every group in routes mounted.
func NewServer(log logger.Logger, routes ...Routes) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(RequestLogger(log))
	e.HTTPErrorHandler = errorHandler(log)
	for _, r := range routes {
		r.RegisterRoutes(e)
	}
	return e
}

// RequestLogger logs one line per request with method, path, status and latency.
func RequestLogger(log logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := map[string]any{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": float64(v.Latency.Microseconds()) / 1000,
			}
			if v.Error != nil {
				fields["error"] = v.Error.Error()
			}
			if sl, ok := log.(logger.StructuredLogger); ok {
				sl.Infow("request", fields)
				return nil
			}
			log.Infof("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}

// errorHandler renders echo errors (unknown routes, wrong methods, panics)
// with the same body shape as handler errors.
func errorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		} else {
			log.Errorf("unhandled error on %s: %v", c.Path(), err)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Message: msg})
		}
		if err != nil {
			log.Errorf("write error response: %v", err)
		}
	}
}
