// Package handler is the HTTP layer between the router and the services.
//
// Handlers bind and validate input through the validation package, call
// the service layer and shape the response. Failures are returned as
// errors and rendered by the global error handler.
package handler

import (
	"github.com/tessdev/holiday-service/internal/server"
	"github.com/tessdev/holiday-service/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Holidays *HolidayHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Holidays: NewHolidayHandler(s, services.Holidays),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
