package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
)

func newMockRepo(t *testing.T) (*snapshotRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &snapshotRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestLoadLatestSnapshot_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	cols := []string{
		"representative", "ticker", "party", "amount", "transaction_date",
		"type", "asset_description", "disclosure_date", "district", "state",
		"sector", "industry", "ptr_link",
	}
	rows := sqlmock.NewRows(cols).
		AddRow("Jane Doe", "MSFT", "Democrat", "$1,001 - $15,000", "2021-03-11",
			"purchase", "Microsoft", "03/15/2021", "CA12", "CA", "Information Technology", "Software", "").
		AddRow("John Roe", "TSLA", "Republican", "", "2021-05-01",
			"sale_full", "Tesla", "", "TX02", "TX", "", "", "")

	mock.ExpectQuery(`SELECT representative`).WillReturnRows(rows)

	trades, err := repo.LoadLatestSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(trades))
	}
	if trades[0].Representative != "Jane Doe" || trades[0].Amount != "$1,001 - $15,000" {
		t.Fatalf("unexpected first trade: %+v", trades[0])
	}
	if trades[1].Sector != "" || trades[1].Amount != "" {
		t.Fatalf("optional NULLs should read back as empty: %+v", trades[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLoadLatestSnapshot_EmptyArchive(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT representative`).
		WillReturnRows(sqlmock.NewRows([]string{"representative"}))

	trades, err := repo.LoadLatestSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trades) != 0 {
		t.Fatalf("expected empty result, got %d", len(trades))
	}
}

func TestHasSnapshotForDate_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		exists bool
	}{
		{name: "present", exists: true},
		{name: "absent", exists: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs(day).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tc.exists))

			got, err := repo.HasSnapshotForDate(day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.exists {
				t.Fatalf("got %v, want %v", got, tc.exists)
			}
		})
	}
}

func TestUpsertSnapshotLog_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO snapshot_log`).
		WithArgs(day, "https://example.com/feed.json", 12437).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.UpsertSnapshotLog(day, "https://example.com/feed.json", 12437); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteSnapshot_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM congress_trades`).
		WithArgs(day).
		WillReturnResult(sqlmock.NewResult(0, 5))

	if err := repo.DeleteSnapshot(day); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInsertTradesBatch_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	trades := []models.Trade{
		{Representative: "Jane Doe", Ticker: "MSFT"},
		{Representative: "John Roe", Ticker: "TSLA"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL synchronous_commit`).WillReturnResult(sqlmock.NewResult(0, 0))
	stmt := mock.ExpectPrepare(`COPY "congress_trades"`)
	for range trades {
		stmt.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	}
	stmt.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0)) // flush
	mock.ExpectCommit()

	if err := repo.InsertTradesBatch(day, trades); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
