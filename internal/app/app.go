package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rfsouza/capitolwatch/config"
	"github.com/rfsouza/capitolwatch/internal/api"
	"github.com/rfsouza/capitolwatch/internal/domain/models"
	"github.com/rfsouza/capitolwatch/internal/feed"
	"github.com/rfsouza/capitolwatch/internal/logger"
	"github.com/rfsouza/capitolwatch/internal/service"
	"github.com/rfsouza/capitolwatch/internal/session"
	"github.com/rfsouza/capitolwatch/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Builds the dataset holder and kicks off the one-time load in the
//     background (public feed by default, archived Postgres snapshot when
//     DATA_SOURCE=postgres). The server starts immediately and reports
//     "loading" until the load resolves; a failed load is terminal and the
//     operator restarts the process.
//   - Builds the session store and dashboard service.
//   - Configures the router and registers the health probes; readiness
//     follows the dataset lifecycle.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	data := service.NewDataset()
	sessions := session.NewStore(time.Duration(cfg.Dashboard.SearchDebounceMS) * time.Millisecond)
	svc := service.NewDashboardService(data, sessions, cfg.Dashboard.ItemsPerPage)

	cleanup := func() {}

	switch cfg.Dashboard.DataSource {
	case "postgres":
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		cleanup = func() { _ = db.Close() }
		repo := storage.NewSnapshotRepository(db)
		go loadDataset(data, "postgres", repo.LoadLatestSnapshot)

	default:
		client := feed.NewClient(cfg.Feed.URL, time.Duration(cfg.Feed.TimeoutSeconds)*time.Second)
		go loadDataset(data, "feed", client.Fetch)
	}

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(data.Ready)
	healthHandler.Register(router)

	return router, cleanup, nil
}

// loadDataset runs the one-time dataset load and resolves the lifecycle:
// ready on success, terminally failed on error.
func loadDataset(data *service.Dataset, source string, load func(context.Context) ([]models.Trade, error)) {
	start := time.Now()
	trades, err := load(context.Background())
	if err != nil {
		logger.L().Error().Str("source", source).Err(err).Msg("dataset load failed")
		data.Fail(err)
		return
	}
	data.SetTrades(trades)
	logger.L().Info().
		Str("source", source).
		Int("trades", len(trades)).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded")
}
