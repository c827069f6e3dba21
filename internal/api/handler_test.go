package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rfsouza/capitolwatch/internal/domain/dto"
	"github.com/rfsouza/capitolwatch/internal/domain/models"
	"github.com/rfsouza/capitolwatch/internal/query"
	"github.com/rfsouza/capitolwatch/internal/service"
	"github.com/rfsouza/capitolwatch/internal/session"
)

// mockService backs the handlers with a real session store and canned data.
type mockService struct {
	sessions *session.Store
	view     query.View
	viewErr  error
	csv      string
	stats    models.Statistics
	opts     models.FilterOptions
	status   string
	count    int
}

func newMockService() *mockService {
	return &mockService{sessions: session.NewStore(0), status: service.StatusReady}
}

func (m *mockService) Session(id string) *session.Session { return m.sessions.Get(id) }
func (m *mockService) View(_ *session.Session) (query.View, error) {
	return m.view, m.viewErr
}
func (m *mockService) ExportCSV(_ *session.Session) (string, error) { return m.csv, m.viewErr }
func (m *mockService) Statistics() (models.Statistics, error)       { return m.stats, m.viewErr }
func (m *mockService) Options() (models.FilterOptions, error)       { return m.opts, m.viewErr }
func (m *mockService) Status() (string, int, error)                 { return m.status, m.count, nil }

var _ service.DashboardService = (*mockService)(nil)

func setupRouter(m *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(m)
	return NewRouter(h)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTrades(t *testing.T) {
	m := newMockService()
	m.view = query.View{
		Trades:     []models.Trade{{Ticker: "MSFT"}},
		Total:      1,
		TotalPages: 1,
		Page:       1,
	}
	r := setupRouter(m)

	w := doJSON(t, r, http.MethodGet, "/api/v1/trades", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if w.Header().Get(SessionHeader) == "" {
		t.Fatalf("expected a session id header")
	}

	var out dto.TradesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Total != 1 || len(out.Trades) != 1 || out.Trades[0].Ticker != "MSFT" {
		t.Fatalf("unexpected body: %+v", out)
	}
	if out.SortField != "transaction_date" || out.SortDir != "desc" {
		t.Fatalf("default sort not reported: %+v", out)
	}
}

func TestGetTrades_DatasetLifecycle(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "loading", err: service.ErrLoading, status: http.StatusServiceUnavailable},
		{name: "failed", err: service.ErrLoadFailed, status: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMockService()
			m.viewErr = tc.err
			w := doJSON(t, setupRouter(m), http.MethodGet, "/api/v1/trades", "")
			if w.Code != tc.status {
				t.Fatalf("status %d, want %d", w.Code, tc.status)
			}
		})
	}
}

func TestPatchFilters_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		check  func(t *testing.T, m *mockService, sid string)
	}{
		{
			name:   "party constrains",
			body:   `{"party":"Democrat"}`,
			status: http.StatusOK,
			check: func(t *testing.T, m *mockService, sid string) {
				f := m.sessions.Get(sid).State().Filter
				if !f.Party.Constrained() || f.Party.Value() != "Democrat" {
					t.Fatalf("party filter not applied: %+v", f.Party)
				}
			},
		},
		{
			name:   "all sentinel clears",
			body:   `{"party":"all"}`,
			status: http.StatusOK,
			check: func(t *testing.T, m *mockService, sid string) {
				if m.sessions.Get(sid).State().Filter.Party.Constrained() {
					t.Fatalf("'all' should clear the selector")
				}
			},
		},
		{
			name:   "search commits via debouncer",
			body:   `{"search":"tesla"}`,
			status: http.StatusOK,
			check: func(t *testing.T, m *mockService, sid string) {
				// Store built with zero window: commit is synchronous.
				if got := m.sessions.Get(sid).State().Filter.Search; got != "tesla" {
					t.Fatalf("search = %q", got)
				}
			},
		},
		{
			name:   "date range applies",
			body:   `{"date_start":"2021-01-01","date_end":"2021-12-31"}`,
			status: http.StatusOK,
			check: func(t *testing.T, m *mockService, sid string) {
				d := m.sessions.Get(sid).State().Filter.Dates
				if d.Start == nil || d.End == nil {
					t.Fatalf("date bounds not applied: %+v", d)
				}
			},
		},
		{
			name:   "empty date clears bound",
			body:   `{"date_start":""}`,
			status: http.StatusOK,
			check: func(t *testing.T, m *mockService, sid string) {
				if m.sessions.Get(sid).State().Filter.Dates.Start != nil {
					t.Fatalf("empty date should clear the bound")
				}
			},
		},
		{
			name:   "bad date rejected",
			body:   `{"date_start":"2021/01/01"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed json rejected",
			body:   `{`,
			status: http.StatusBadRequest,
		},
		{
			name:   "amount bucket applies",
			body:   `{"amount":"under15k"}`,
			status: http.StatusOK,
			check: func(t *testing.T, m *mockService, sid string) {
				if got := m.sessions.Get(sid).State().Filter.Amount; got != query.BucketUnder15K {
					t.Fatalf("amount bucket = %q", got)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMockService()
			r := setupRouter(m)
			w := doJSON(t, r, http.MethodPatch, "/api/v1/session/filters", tc.body)
			if w.Code != tc.status {
				t.Fatalf("status %d, want %d: %s", w.Code, tc.status, w.Body.String())
			}
			if tc.check != nil {
				tc.check(t, m, w.Header().Get(SessionHeader))
			}
		})
	}
}

func TestPostSort(t *testing.T) {
	m := newMockService()
	r := setupRouter(m)

	// New column starts ascending.
	w := doJSON(t, r, http.MethodPost, "/api/v1/session/sort", `{"field":"ticker"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	sid := w.Header().Get(SessionHeader)
	st := m.sessions.Get(sid).State().Sort
	if st.Field != query.FieldTicker || st.Direction != query.Asc {
		t.Fatalf("sort state: %+v", st)
	}

	// Unknown column rejected.
	w = doJSON(t, r, http.MethodPost, "/api/v1/session/sort", `{"field":"nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	// Missing field rejected by binding.
	w = doJSON(t, r, http.MethodPost, "/api/v1/session/sort", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestPostPage(t *testing.T) {
	m := newMockService()
	m.view = query.View{TotalPages: 3, Page: 1}
	r := setupRouter(m)

	w := doJSON(t, r, http.MethodPost, "/api/v1/session/page", `{"page":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	sid := w.Header().Get(SessionHeader)
	if got := m.sessions.Get(sid).State().Page; got != 2 {
		t.Fatalf("page %d, want 2", got)
	}

	// Relative navigation uses the view's page count.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/page", strings.NewReader(`{"action":"last"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionHeader, sid)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := m.sessions.Get(sid).State().Page; got != 3 {
		t.Fatalf("page %d after 'last', want 3", got)
	}

	// Invalid absolute page.
	w = doJSON(t, r, http.MethodPost, "/api/v1/session/page", `{"page":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	// Unknown action.
	w = doJSON(t, r, http.MethodPost, "/api/v1/session/page", `{"action":"sideways"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestToggleFavoriteAndWatchlist(t *testing.T) {
	m := newMockService()
	r := setupRouter(m)

	w := doJSON(t, r, http.MethodPost, "/api/v1/session/favorites/Jane%20Doe", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var out dto.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out.Favorites) != 1 || out.Favorites[0] != "Jane Doe" {
		t.Fatalf("favorites: %+v", out.Favorites)
	}

	// Toggle again on the same session: set returns to empty.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/favorites/Jane%20Doe", nil)
	req.Header.Set(SessionHeader, out.SessionID)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Favorites) != 0 {
		t.Fatalf("toggle pair should restore the set: %+v", out.Favorites)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/session/watchlist/TSLA", "")
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Watchlist) != 1 || out.Watchlist[0] != "TSLA" {
		t.Fatalf("watchlist: %+v", out.Watchlist)
	}
}

func TestPostStatsVisibility(t *testing.T) {
	m := newMockService()
	r := setupRouter(m)

	w := doJSON(t, r, http.MethodPost, "/api/v1/session/stats-visibility", `{"visible":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var out dto.SessionResponse
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if !out.ShowStats {
		t.Fatalf("show_stats not set: %+v", out)
	}
}

func TestGetStatisticsAndOptions(t *testing.T) {
	m := newMockService()
	m.stats = models.Statistics{
		TopRepresentatives: []models.TradeCount{{Name: "A", Count: 2}},
		PartyDistribution:  map[string]int{"Democrat": 2},
		TotalVolume:        16001,
	}
	m.opts = models.FilterOptions{Parties: []string{"Democrat"}, States: []string{"CA"}}
	r := setupRouter(m)

	w := doJSON(t, r, http.MethodGet, "/api/v1/statistics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var stats models.Statistics
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if stats.TotalVolume != 16001 {
		t.Fatalf("stats body: %+v", stats)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var opts models.FilterOptions
	_ = json.Unmarshal(w.Body.Bytes(), &opts)
	if len(opts.Parties) != 1 || opts.States[0] != "CA" {
		t.Fatalf("options body: %+v", opts)
	}
}

func TestExportCSV(t *testing.T) {
	m := newMockService()
	m.csv = "Date,Representative,Party,Stock,Transaction Type,Amount,Description\n3/11/2021,Jane Doe,Democrat,MSFT,purchase,$15,000,Microsoft"
	r := setupRouter(m)

	w := doJSON(t, r, http.MethodGet, "/api/v1/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Fatalf("content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "congress_trades.csv") {
		t.Fatalf("content disposition %q", cd)
	}
	if w.Body.String() != m.csv {
		t.Fatalf("body mismatch:\n%s", w.Body.String())
	}
}

func TestGetStatus(t *testing.T) {
	m := newMockService()
	m.status = service.StatusLoading
	r := setupRouter(m)

	w := doJSON(t, r, http.MethodGet, "/api/v1/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var out dto.StatusResponse
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Status != service.StatusLoading {
		t.Fatalf("body: %+v", out)
	}
}
