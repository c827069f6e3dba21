package main

//
//  @title           capitolwatch API
//  @version         1.0
//  @description     Congressional stock-trading dashboard API.
//  @termsOfService  https://github.com/rfsouza/capitolwatch
//  @contact.name    API Support
//  @contact.url     https://github.com/rfsouza/capitolwatch
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        trades
//  @tag.description Querying, statistics, and CSV export
//
//  @tag.name        session
//  @tag.description Per-session filters, sort, pagination, favorites, watchlist
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rfsouza/capitolwatch/config"
	_ "github.com/rfsouza/capitolwatch/docs" // swagger docs
	"github.com/rfsouza/capitolwatch/internal/app"
	"github.com/rfsouza/capitolwatch/internal/archive"
	"github.com/rfsouza/capitolwatch/internal/feed"
	"github.com/rfsouza/capitolwatch/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and releases resources when an
// OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the capitolwatch application.
//
// Modes (selected via --mode flag):
//   - api:     Serves the dashboard API; the dataset loads in the background
//     from the public feed (or the Postgres snapshot when DATA_SOURCE=postgres).
//   - archive: Fetches the feed once and persists today's snapshot to Postgres.
//
// Flags:
//   - --mode:  Execution mode ("api" or "archive"). Default: "api".
//   - --port:  Port for the API server. Defaults to SERVER_PORT from config.
//   - --force: Archive mode only: replace an already-archived snapshot.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or archive")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	force := flag.Bool("force", false, "Re-archive today's snapshot even if already recorded")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "archive":
		logger.L().Info().Msg("running snapshot archive")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		client := feed.NewClient(config.AppConfig.Feed.URL, time.Duration(config.AppConfig.Feed.TimeoutSeconds)*time.Second)
		if err := archive.Run(ctx, client, db, config.AppConfig.Feed.URL, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("archive failed")
		}
		logger.L().Info().Msg("archive completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
