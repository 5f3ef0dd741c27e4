// Command web serves the back-office front-end: server-rendered pages for
// managing clients and their accounts through the back-office API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"bankfront/internal/shared/config"
	"bankfront/internal/shared/logger"
	"bankfront/internal/shared/server"
	"bankfront/internal/shared/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}
}

func run() error {
	if err := config.LoadEnvFiles(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	l := logger.Init("bank-web", cfg.Log.Level, cfg.Log.Format)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(context.Background(), telemetry.FromConfig(cfg.Telemetry, "web"))
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
	}

	deps, err := NewDependencies(cfg)
	if err != nil {
		return err
	}

	handler := SetupRoutes(deps, cfg, l)
	srv, redirectSrv := server.Start(server.FromConfig(handler, cfg))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	server.Shutdown(srv, redirectSrv, 30*time.Second)
	return nil
}
