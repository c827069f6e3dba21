package service

import (
	"errors"
	"sync"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
	"github.com/rfsouza/capitolwatch/internal/query"
)

// Load lifecycle errors. The fetch happens once; a failure is terminal for
// the process, there is no automatic retry.
var (
	ErrLoading    = errors.New("dataset is still loading")
	ErrLoadFailed = errors.New("dataset failed to load")
)

// Status values reported by the status endpoint and readiness probe.
const (
	StatusLoading = "loading"
	StatusReady   = "ready"
	StatusError   = "error"
)

// Dataset holds the raw trade collection for the process lifetime. It is
// written exactly once on fetch success and read-only afterwards; the
// statistics snapshot and dropdown option sets are derived at that moment
// and never recomputed.
type Dataset struct {
	mu      sync.RWMutex
	status  string
	trades  []models.Trade
	stats   models.Statistics
	options models.FilterOptions
	loadErr error
}

// NewDataset starts in the loading state.
func NewDataset() *Dataset {
	return &Dataset{status: StatusLoading}
}

// SetTrades installs the fetched collection and derives statistics and
// filter options from it. Call once.
func (d *Dataset) SetTrades(trades []models.Trade) {
	stats := query.Statistics(trades)
	options := query.Options(trades)

	d.mu.Lock()
	d.trades = trades
	d.stats = stats
	d.options = options
	d.status = StatusReady
	d.mu.Unlock()
}

// Fail marks the load as terminally failed.
func (d *Dataset) Fail(err error) {
	d.mu.Lock()
	d.loadErr = err
	d.status = StatusError
	d.mu.Unlock()
}

// Trades returns the raw collection, or the lifecycle error while loading
// or after a failed load. Callers must treat the slice as immutable.
func (d *Dataset) Trades() ([]models.Trade, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if err := d.readyLocked(); err != nil {
		return nil, err
	}
	return d.trades, nil
}

// Statistics returns the snapshot derived at load time.
func (d *Dataset) Statistics() (models.Statistics, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if err := d.readyLocked(); err != nil {
		return models.Statistics{}, err
	}
	return d.stats, nil
}

// Options returns the dropdown option sets derived at load time.
func (d *Dataset) Options() (models.FilterOptions, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if err := d.readyLocked(); err != nil {
		return models.FilterOptions{}, err
	}
	return d.options, nil
}

// Status reports the lifecycle state, the record count, and the load error
// detail when there is one.
func (d *Dataset) Status() (string, int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status, len(d.trades), d.loadErr
}

// Ready returns nil once the dataset is served. Wired into the readiness
// probe.
func (d *Dataset) Ready() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readyLocked()
}

func (d *Dataset) readyLocked() error {
	switch d.status {
	case StatusReady:
		return nil
	case StatusError:
		return ErrLoadFailed
	default:
		return ErrLoading
	}
}
