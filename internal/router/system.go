package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/campus-registry/internal/handler"
)

// registerSystemRoutes registers "system" endpoints that are not part of
// business logic: the heartbeat, the health status endpoint, and the
// docs UI with its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Root heartbeat, the simplest of probes.
	r.GET("/", h.Health.Heartbeat)

	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)

	// Serve all files from ./static at /static/*.
	// Used for openapi.json and openapi.html (and any future docs assets).
	r.Static("/static", "static")

	// Docs UI endpoint (serves openapi.html).
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
