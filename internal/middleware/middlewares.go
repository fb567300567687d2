// Package middleware contains the Echo middleware of the HTTP server:
// request ids, request-scoped loggers, New Relic tracing, rate limiting,
// the standard CORS/secure/recover set and the global error handler.
package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/tessdev/holiday-service/internal/server"
)

// Middlewares groups every middleware component so the router builds
// them once.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
