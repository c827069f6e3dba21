package query

import "github.com/rfsouza/capitolwatch/internal/domain/models"

// TotalPages returns ceiling(total / pageSize). A non-positive page size is
// treated as 1 to keep the division total.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	return (total + pageSize - 1) / pageSize
}

// Page returns the 1-based page slice of the given collection. A page beyond
// the end (or below 1) yields an empty slice; the last page may be partial.
// Clamping an out-of-range request to a valid page is the caller's job, not
// the slicer's.
func Page(trades []models.Trade, page, pageSize int) []models.Trade {
	if pageSize < 1 {
		pageSize = 1
	}
	start := (page - 1) * pageSize
	if page < 1 || start >= len(trades) {
		return []models.Trade{}
	}
	end := start + pageSize
	if end > len(trades) {
		end = len(trades)
	}
	return trades[start:end]
}
