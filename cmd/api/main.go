// Command api serves the back-office REST API (customers and accounts) that
// the web front-end talks to. It runs on an in-memory store by default and
// on Postgres with STORE_DRIVER=postgres.
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
	// The API listens next to the web front-end unless told otherwise.
	if os.Getenv("PORT") == "" {
		cfg.Server.Port = "8081"
	}

	l := logger.Init("bank-api", cfg.Log.Level, cfg.Log.Format)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(context.Background(), telemetry.FromConfig(cfg.Telemetry, "api"))
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
	}

	deps, err := NewDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	handler := SetupRoutes(deps, cfg, l)
	srv, redirectSrv := server.Start(server.FromConfig(handler, cfg))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	server.Shutdown(srv, redirectSrv, 30*time.Second)
	return nil
}
