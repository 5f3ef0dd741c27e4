package main

import (
	"net/http"

	"github.com/rs/zerolog"

	httphandlers "bankfront/internal/interfaces/http"
	"bankfront/internal/shared/config"
	"bankfront/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger zerolog.Logger) http.Handler {
	router := httphandlers.NewRouter(deps.CustomerHandler, deps.AccountHandler)
	router.Use(middleware.Tracing)

	var handler http.Handler = router
	handler = middleware.RateLimit(cfg.RateLimit.Rate)(handler)
	handler = middleware.CORS(cfg.Server.AllowedHosts)(handler)
	handler = middleware.Logging(logger)(handler)

	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(cfg.Telemetry.ServiceName + "-api")(handler)
	}

	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		logger.Info().Msg("TLS security middleware enabled (HSTS)")
	}

	return handler
}
