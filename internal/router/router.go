// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/campus-registry/internal/handler"
	"github.com/deppfellow/campus-registry/internal/middleware"
)

// Setup builds the echo engine: global middleware in order, the error
// funnel, system routes, and one CRUD route group per resource.
func Setup(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Every error, echo's own included, funnels through one handler.
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: recovery outermost, request id before the
	// enhancer and logger that record it.
	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerResourceRoutes(e, h.Students)
	registerResourceRoutes(e, h.Employees)

	return e
}

// registerResourceRoutes mounts one resource's CRUD surface under its
// route group.
func registerResourceRoutes(r *echo.Echo, h *handler.ResourceHandler) {
	g := r.Group(h.Path())

	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
