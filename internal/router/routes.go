package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samrahim8/curbappeal/internal/config"
	"github.com/samrahim8/curbappeal/internal/handler"
	middlewarepkg "github.com/samrahim8/curbappeal/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Audit        *handler.AuditHandler
	Autocomplete *handler.AutocompleteHandler
	OG           *handler.OGHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/audit", handlers.Audit.Get, middlewarepkg.AuditRateLimiter(cfg.RateLimitAudit))
	api.POST("/audit", handlers.Audit.Run, middlewarepkg.AuditRateLimiter(cfg.RateLimitAudit))
	api.GET("/places/autocomplete", handlers.Autocomplete.Search)
	api.GET("/og", handlers.OG.Card)
}
