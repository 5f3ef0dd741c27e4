package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Telemetry wraps handlers with otelhttp instrumentation under service.
// Records request duration, active requests, request/response sizes,
// and creates a trace span per request.
func Telemetry(service string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(service)
}
