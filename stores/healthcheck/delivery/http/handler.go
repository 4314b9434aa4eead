package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
)

type report struct {
	Healthy string            `json:"healthy"`
	Stores  []hcdomain.Status `json:"stores"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	stores, err := h.healthCheck.Check(context)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, report{
			Healthy: err.Error(),
			Stores:  stores,
		})
	}
	return c.JSON(http.StatusOK, report{
		Healthy: "ok",
		Stores:  stores,
	})
}
