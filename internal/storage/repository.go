package storage

import (
	"context"
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
)

// SnapshotRepository is the contract for archiving and reloading feed
// snapshots. One snapshot is the full dataset as fetched on a given day;
// the API can serve from the most recent snapshot when the public feed is
// unreachable.
type SnapshotRepository interface {
	InsertTradesBatch(date time.Time, trades []models.Trade) error
	LoadLatestSnapshot(ctx context.Context) ([]models.Trade, error)
	HasSnapshotForDate(date time.Time) (bool, error)
	UpsertSnapshotLog(date time.Time, source string, rowCount int) error
	DeleteSnapshot(date time.Time) error
}

type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository wraps an open *sql.DB.
func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// tradeColumns is the congress_trades column order used by the COPY load
/// and the snapshot read. Dates stay text: they are display strings in the
// feed and the engine parses them on demand.
var tradeColumns = []string{
	"representative",
	"ticker",
	"party",
	"amount",
	"transaction_date",
	"type",
	"asset_description",
	"disclosure_date",
	"district",
	"state",
	"sector",
	"industry",
	"ptr_link",
}

// InsertTradesBatch bulk-loads one batch of trades for a snapshot date in a
// single COPY transaction.
func (r *snapshotRepository) InsertTradesBatch(date time.Time, trades []models.Trade) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Bulk load; durability comes from the final commit
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	cols := append([]string{"snapshot_date"}, tradeColumns...)
	stmt, err := tx.Prepare(pq.CopyIn("congress_trades", cols...))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, t := range trades {
		if _, err := stmt.Exec(
			date,
			t.Representative,
			t.Ticker,
			t.Party,
			t.Amount,
			t.TransactionDate,
			t.Type,
			t.AssetDescription,
			t.DisclosureDate,
			t.District,
			t.State,
			t.Sector,
			t.Industry,
			t.PTRLink,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// LoadLatestSnapshot reads back the most recent archived snapshot in
// insertion order. An empty archive yields an empty slice, not an error.
func (r *snapshotRepository) LoadLatestSnapshot(ctx context.Context) ([]models.Trade, error) {
	query := `
		SELECT representative, ticker, party, COALESCE(amount, ''),
		       COALESCE(transaction_date, ''), type, asset_description,
		       COALESCE(disclosure_date, ''), district, state,
		       COALESCE(sector, ''), COALESCE(industry, ''), COALESCE(ptr_link, '')
		FROM congress_trades
		WHERE snapshot_date = (SELECT MAX(snapshot_date) FROM congress_trades)
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		if err := rows.Scan(
			&t.Representative,
			&t.Ticker,
			&t.Party,
			&t.Amount,
			&t.TransactionDate,
			&t.Type,
			&t.AssetDescription,
			&t.DisclosureDate,
			&t.District,
			&t.State,
			&t.Sector,
			&t.Industry,
			&t.PTRLink,
		); err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// HasSnapshotForDate checks whether a snapshot was already archived for a
// given day.
func (r *snapshotRepository) HasSnapshotForDate(date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM snapshot_log WHERE snapshot_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertSnapshotLog records (or updates) the archive entry for a day.
func (r *snapshotRepository) UpsertSnapshotLog(date time.Time, source string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO snapshot_log (snapshot_date, source, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (snapshot_date)
		DO UPDATE SET source = EXCLUDED.source,
					  row_count = EXCLUDED.row_count,
					  archived_at = NOW()
	`, date, source, rowCount)
	return err
}

// DeleteSnapshot removes all archived trades for a snapshot date.
func (r *snapshotRepository) DeleteSnapshot(date time.Time) error {
	_, err := r.db.Exec(`DELETE FROM congress_trades WHERE snapshot_date = $1`, date)
	return err
}
