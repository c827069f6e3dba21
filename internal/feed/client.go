// Package feed fetches the public disclosure dataset. One request per
// process lifetime: there is no retry, no partial result, and a failure is
// terminal for the session.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
)

// Client fetches the trade dataset over HTTP.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a feed client for the given dataset URL. A non-positive
// timeout disables the client-side deadline.
func NewClient(url string, timeout time.Duration) *Client {
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{url: url, http: hc}
}

// Fetch retrieves and decodes the full dataset.
//
// The response must be a JSON array of trade objects; anything else
// (transport error, non-2xx status, non-array payload) is a fetch-level
// error. Individual records are decoded tolerantly: absent optional fields
// become zero values and are treated as unknown downstream, never as errors.
func (c *Client) Fetch(ctx context.Context) ([]models.Trade, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	var trades []models.Trade
	if err := json.NewDecoder(resp.Body).Decode(&trades); err != nil {
		return nil, fmt.Errorf("decode feed payload: %w", err)
	}
	return trades, nil
}
