package archive

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
	"github.com/rfsouza/capitolwatch/internal/storage"
)

type stubFetcher struct {
	trades []models.Trade
	err    error
}

func (s *stubFetcher) Fetch(_ context.Context) ([]models.Trade, error) { return s.trades, s.err }

type stubRepo struct {
	mu        sync.Mutex
	exists    bool
	existsErr error
	insertErr error
	inserted  int
	batches   int
	deleted   bool
	logged    bool
	logDate   time.Time
	logCount  int
}

func (r *stubRepo) InsertTradesBatch(_ time.Time, trades []models.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted += len(trades)
	r.batches++
	return nil
}

func (r *stubRepo) LoadLatestSnapshot(_ context.Context) ([]models.Trade, error) { return nil, nil }

func (r *stubRepo) HasSnapshotForDate(_ time.Time) (bool, error) { return r.exists, r.existsErr }

func (r *stubRepo) UpsertSnapshotLog(date time.Time, _ string, rowCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logged = true
	r.logDate = date
	r.logCount = rowCount
	return nil
}

func (r *stubRepo) DeleteSnapshot(_ time.Time) error {
	r.deleted = true
	return nil
}

var _ storage.SnapshotRepository = (*stubRepo)(nil)

func withStubRepo(t *testing.T, repo storage.SnapshotRepository) {
	t.Helper()
	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.SnapshotRepository { return repo }
	t.Cleanup(func() { repoCtor = old })
}

func makeTrades(n int) []models.Trade {
	out := make([]models.Trade, n)
	for i := range out {
		out[i] = models.Trade{Ticker: "T"}
	}
	return out
}

func TestRun_ArchivesInBatches(t *testing.T) {
	repo := &stubRepo{}
	withStubRepo(t, repo)

	fetcher := &stubFetcher{trades: makeTrades(12001)}
	if err := Run(context.Background(), fetcher, nil, "feed-url", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.inserted != 12001 {
		t.Fatalf("inserted %d rows, want 12001", repo.inserted)
	}
	if repo.batches != 3 { // 5000 + 5000 + 2001
		t.Fatalf("got %d batches, want 3", repo.batches)
	}
	if !repo.logged || repo.logCount != 12001 {
		t.Fatalf("snapshot log not recorded: %+v", repo)
	}
	if !repo.logDate.Equal(truncateToDate(time.Now().UTC())) {
		t.Fatalf("log date %v not today", repo.logDate)
	}
}

func TestRun_SkipsExistingSnapshot(t *testing.T) {
	repo := &stubRepo{exists: true}
	withStubRepo(t, repo)

	fetcher := &stubFetcher{trades: makeTrades(5)}
	if err := Run(context.Background(), fetcher, nil, "feed-url", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.inserted != 0 || repo.deleted || repo.logged {
		t.Fatalf("expected skip, got %+v", repo)
	}
}

func TestRun_ForceReplacesSnapshot(t *testing.T) {
	repo := &stubRepo{exists: true}
	withStubRepo(t, repo)

	fetcher := &stubFetcher{trades: makeTrades(5)}
	if err := Run(context.Background(), fetcher, nil, "feed-url", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.deleted {
		t.Fatalf("force should delete the existing snapshot")
	}
	if repo.inserted != 5 || !repo.logged {
		t.Fatalf("force should rewrite: %+v", repo)
	}
}

func TestRun_FetchFailure(t *testing.T) {
	repo := &stubRepo{}
	withStubRepo(t, repo)

	fetcher := &stubFetcher{err: errors.New("feed down")}
	if err := Run(context.Background(), fetcher, nil, "feed-url", false); err == nil {
		t.Fatalf("expected fetch error")
	}
	if repo.inserted != 0 || repo.logged {
		t.Fatalf("nothing should be written on fetch failure: %+v", repo)
	}
}

func TestRun_InsertFailure(t *testing.T) {
	repo := &stubRepo{insertErr: errors.New("copy failed")}
	withStubRepo(t, repo)

	fetcher := &stubFetcher{trades: makeTrades(10)}
	if err := Run(context.Background(), fetcher, nil, "feed-url", false); err == nil {
		t.Fatalf("expected insert error")
	}
	if repo.logged {
		t.Fatalf("snapshot log must not be written after a failed batch")
	}
}
