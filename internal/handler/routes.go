package handler

import (
	"github.com/akniet/push-analytics/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes (spec.md §6). /health, /analyze,
// and /analyze/all are unauthenticated; /test/* and /export/* require a
// bearer API token, and /export/* is additionally rate limited.
func RegisterRoutes(e *echo.Echo, h *Handler, apiAuth *middleware.APITokenAuthMiddleware, rateLimiter *middleware.RateLimiter) {
	api := e.Group("/api/v1")

	api.GET("/health", h.Health)
	api.POST("/analyze", h.Analyze)
	api.POST("/analyze/all", h.AnalyzeAll)

	test := api.Group("/test")
	test.Use(apiAuth.Authenticate())
	test.GET("/random", h.TestRandom)
	test.GET("/client/:code", h.TestClient)
	test.GET("/db-status", h.TestDBStatus)

	export := api.Group("/export")
	export.Use(apiAuth.Authenticate())
	export.Use(middleware.RateLimitMiddleware(rateLimiter))
	export.GET("/csv", h.ExportCSV)
	export.GET("/csv/client/:code", h.ExportCSVClient)
}
