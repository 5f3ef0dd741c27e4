package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"bankfront/internal/shared/config"
	"bankfront/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	deps.Pages.Register(router)
	router.Use(middleware.Tracing)

	var handler http.Handler = router
	handler = middleware.Logging(logger)(handler)

	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(cfg.Telemetry.ServiceName + "-web")(handler)
	}

	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		logger.Info().Msg("TLS security middleware enabled (HSTS)")
	}

	return handler
}
