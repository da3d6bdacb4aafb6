package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type HealthStatus struct {
	Status string `json:"status"`
}

// HealthHandler answers 200 while hc reports healthy and 503 otherwise.
func HealthHandler(hc HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !hc.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, HealthStatus{Status: "unavailable"})
		}
		return c.JSON(http.StatusOK, HealthStatus{Status: "ok"})
	}
}
