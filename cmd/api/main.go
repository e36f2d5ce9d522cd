// Command api runs the campus registry HTTP service.
//
// Startup wires the application container in dependency order: config,
// logger, server (database), repositories, services, handlers,
// middlewares, router. Shutdown is signal-driven and graceful.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/campus-registry/internal/config"
	"github.com/deppfellow/campus-registry/internal/handler"
	"github.com/deppfellow/campus-registry/internal/logger"
	"github.com/deppfellow/campus-registry/internal/middleware"
	"github.com/deppfellow/campus-registry/internal/repository"
	"github.com/deppfellow/campus-registry/internal/router"
	"github.com/deppfellow/campus-registry/internal/server"
	"github.com/deppfellow/campus-registry/internal/service"
)

// shutdownTimeout bounds how long inflight requests get to finish once
// a termination signal arrives.
const shutdownTimeout = 10 * time.Second

func main() {
	// Minimal logger for failures before the configured one exists.
	bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	log, err := logger.New(cfg)
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("failed to initialize logger")
	}

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.Setup(handlers, middlewares))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("server failed")
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown cleanly")
	}

	log.Info().Msg("server stopped")
}
