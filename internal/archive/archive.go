// Package archive implements the --mode archive run: fetch the feed once
// and persist the snapshot to Postgres so the API can serve without the
// public feed.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
	"github.com/rfsouza/capitolwatch/internal/logger"
	"github.com/rfsouza/capitolwatch/internal/storage"
)

const (
	defaultBatchSize = 5000
	maxParallel      = 4
)

// Fetcher is satisfied by feed.Client; archive only needs the one call.
type Fetcher interface {
	Fetch(ctx context.Context) ([]models.Trade, error)
}

// repoCtor is an indirection for creating the repository; tests override it.
var repoCtor = func(db *sql.DB) storage.SnapshotRepository {
	return storage.NewSnapshotRepository(db)
}

// Run fetches the full dataset and archives it as today's snapshot.
//
// Behavior:
//   - Skips when today's snapshot already exists, unless force is set, in
//     which case the existing snapshot is deleted and rewritten.
//   - Inserts in batches of 5000, up to min(4, NumCPU) batches in flight;
//     the first failing batch cancels the rest.
//   - Records the run in snapshot_log for idempotency.
func Run(ctx context.Context, fetcher Fetcher, db *sql.DB, source string, force bool) error {
	repo := repoCtor(db)
	today := truncateToDate(time.Now().UTC())

	exists, err := repo.HasSnapshotForDate(today)
	if err != nil {
		return fmt.Errorf("check snapshot log: %w", err)
	}
	if exists && !force {
		logger.L().Info().Str("date", today.Format("2006-01-02")).Msg("snapshot already archived, skipping")
		return nil
	}
	if exists && force {
		if err := repo.DeleteSnapshot(today); err != nil {
			return fmt.Errorf("delete existing snapshot: %w", err)
		}
	}

	start := time.Now()
	trades, err := fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}
	logger.L().Info().Int("trades", len(trades)).Dur("elapsed", time.Since(start)).Msg("feed fetched")

	parallel := maxParallel
	if c := runtime.NumCPU(); c < parallel {
		parallel = c
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for begin := 0; begin < len(trades); begin += defaultBatchSize {
		end := begin + defaultBatchSize
		if end > len(trades) {
			end = len(trades)
		}
		batch := trades[begin:end]
		g.Go(func() error {
			if err := repo.InsertTradesBatch(today, batch); err != nil {
				return fmt.Errorf("insert batch: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := repo.UpsertSnapshotLog(today, source, len(trades)); err != nil {
		return fmt.Errorf("upsert snapshot log: %w", err)
	}

	logger.L().Info().
		Str("date", today.Format("2006-01-02")).
		Int("rows", len(trades)).
		Dur("elapsed", time.Since(start)).
		Bool("force", force).
		Msg("snapshot archived")
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
