// Package router builds the Echo instance: global middleware in order,
// the global error handler, system routes and the holiday routes.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tessdev/holiday-service/internal/handler"
	"github.com/tessdev/holiday-service/internal/middleware"
	"github.com/tessdev/holiday-service/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
	)

	// After the request logger so denied requests still get an API line
	// carrying their request id.
	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	router.Use(middlewares.Global.Recover())

	registerSystemRoutes(router, h)
	registerHolidayRoutes(router, h)

	return router
}

// registerHolidayRoutes exposes the holiday list. Only GET is registered,
// so any other method on /holidays is answered 405 by the router without
// reaching the provider.
func registerHolidayRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/holidays", handler.Handle(
		h.Holidays.Handler,
		h.Holidays.ListHolidays,
		http.StatusOK,
		&handler.ListHolidaysRequest{},
	))
}
