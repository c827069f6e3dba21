package dto

import "github.com/rfsouza/capitolwatch/internal/domain/models"

// TradesResponse is the JSON structure returned by GET /api/v1/trades:
// one page of the filtered+sorted collection plus the figures the
// pagination display needs.
//
// swagger:model TradesResponse
type TradesResponse struct {
	Trades     []models.Trade `json:"trades"`
	Total      int            `json:"total" example:"143"`      // records matching the filter
	TotalPages int            `json:"total_pages" example:"15"` // at the configured page size
	Page       int            `json:"page" example:"1"`         // current 1-based page
	SortField  string         `json:"sort_field" example:"transaction_date"`
	SortDir    string         `json:"sort_dir" example:"desc"`
}

// SessionResponse reports the caller's session-scoped UI state after a
// mutation: favorites, watchlist, and the stats panel flag.
type SessionResponse struct {
	SessionID string   `json:"session_id"`
	Favorites []string `json:"favorites"`
	Watchlist []string `json:"watchlist"`
	ShowStats bool     `json:"show_stats"`
}

// StatusResponse reports the dataset lifecycle state: loading until the
// feed fetch completes, then ready, or error terminally on fetch failure.
type StatusResponse struct {
	Status string `json:"status" example:"ready"` // loading | ready | error
	Trades int    `json:"trades" example:"12437"`
	Detail string `json:"detail,omitempty"`
}
