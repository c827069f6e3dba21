package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rfsouza/capitolwatch/internal/domain/dto"
	"github.com/rfsouza/capitolwatch/internal/query"
	"github.com/rfsouza/capitolwatch/internal/service"
	"github.com/rfsouza/capitolwatch/internal/session"
)

// SessionHeader carries the dashboard session id. The server issues one on
// the first request and echoes it back; clients send it on subsequent
// requests to keep their filters, sort, page, favorites, and watchlist.
const SessionHeader = "X-Session-ID"

// Handler provides the HTTP handlers for the dashboard API.
//
// Responsibilities:
//   - Validate incoming parameters and request bodies.
//   - Resolve the caller's session and apply UI events to it.
//   - Translate engine output into response DTOs with appropriate statuses.
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a Handler around the dashboard service.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// sortFields is the set of column identifiers the sort endpoint accepts.
var sortFields = map[query.Field]struct{}{
	query.FieldRepresentative:   {},
	query.FieldTicker:           {},
	query.FieldParty:            {},
	query.FieldAmount:           {},
	query.FieldTransactionDate:  {},
	query.FieldType:             {},
	query.FieldAssetDescription: {},
	query.FieldDisclosureDate:   {},
	query.FieldDistrict:         {},
	query.FieldState:            {},
	query.FieldSector:           {},
	query.FieldIndustry:         {},
}

// sessionFor resolves (or creates) the caller's session and echoes its id.
func (h *Handler) sessionFor(c *gin.Context) *session.Session {
	sess := h.svc.Session(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, sess.ID())
	return sess
}

// datasetError maps lifecycle errors to responses. Returns true when it
// wrote one.
func datasetError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrLoading):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("dataset is still loading", nil))
		return true
	case errors.Is(err, service.ErrLoadFailed):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("dataset failed to load", err))
		return true
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to derive view", err))
		return true
	}
	return false
}

// GetTrades handles GET /api/v1/trades.
//
// GetTrades godoc
// @Summary      Current page of trades
// @Description  Returns the caller's filtered, sorted, paginated view
// @Tags         trades
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session id from a previous response"
// @Success      200  {object}  dto.TradesResponse     "Success"
// @Failure      503  {object}  dto.ErrorResponse      "Dataset not ready"
// @Router       /api/v1/trades [get]
func (h *Handler) GetTrades(c *gin.Context) {
	sess := h.sessionFor(c)
	view, err := h.svc.View(sess)
	if datasetError(c, err) {
		return
	}
	st := sess.State()

	c.JSON(http.StatusOK, dto.TradesResponse{
		Trades:     view.Trades,
		Total:      view.Total,
		TotalPages: view.TotalPages,
		Page:       view.Page,
		SortField:  string(st.Sort.Field),
		SortDir:    string(st.Sort.Direction),
	})
}

// PatchFilters handles PATCH /api/v1/session/filters. Only fields present
// in the body are applied. Search text goes through the debouncer; every
// other change commits immediately.
//
// PatchFilters godoc
// @Summary      Update filters
// @Description  Applies the provided filter fields to the caller's session
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body      dto.FilterRequest  true  "Fields to change"
// @Success      200  {object}  dto.TradesResponse  "Updated view"
// @Failure      400  {object}  dto.ErrorResponse   "Bad Request"
// @Failure      503  {object}  dto.ErrorResponse   "Dataset not ready"
// @Router       /api/v1/session/filters [patch]
func (h *Handler) PatchFilters(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid filter payload", err))
		return
	}

	// Validate date bounds before touching the session.
	start, err := parseBound(req.DateStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date_start, expected YYYY-MM-DD", err))
		return
	}
	end, err := parseBound(req.DateEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date_end, expected YYYY-MM-DD", err))
		return
	}

	sess := h.sessionFor(c)
	if req.Search != nil {
		sess.SetSearch(*req.Search)
	}
	sess.UpdateFilter(func(f *query.FilterState) {
		if req.Party != nil {
			f.Party = toSelector(*req.Party)
		}
		if req.Type != nil {
			f.Type = toSelector(*req.Type)
		}
		if req.State != nil {
			f.State = toSelector(*req.State)
		}
		if req.Sector != nil {
			f.Sector = toSelector(*req.Sector)
		}
		if req.Amount != nil {
			f.Amount = toBucket(*req.Amount)
		}
		if req.DateStart != nil {
			f.Dates.Start = start
		}
		if req.DateEnd != nil {
			f.Dates.End = end
		}
	})

	h.GetTrades(c)
}

// toSelector maps the dropdown wire value to a constraint. "all" is the
// sentinel the dashboard's selects use for no constraint.
func toSelector(v string) query.Selector {
	if v == "" || v == "all" {
		return query.Any()
	}
	return query.Equals(v)
}

func toBucket(v string) query.AmountBucket {
	if v == "" || v == "all" {
		return query.BucketAny
	}
	return query.AmountBucket(v)
}

// parseBound parses an optional YYYY-MM-DD bound; empty clears it.
func parseBound(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// PostSort handles POST /api/v1/session/sort with column-click semantics:
// the active column flips direction, a new column starts ascending.
//
// PostSort godoc
// @Summary      Toggle sort column
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SortRequest  true  "Clicked column"
// @Success      200  {object}  dto.TradesResponse  "Updated view"
// @Failure      400  {object}  dto.ErrorResponse   "Unknown column"
// @Router       /api/v1/session/sort [post]
func (h *Handler) PostSort(c *gin.Context) {
	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid sort payload", err))
		return
	}
	field := query.Field(req.Field)
	if _, ok := sortFields[field]; !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown sort field", nil))
		return
	}

	sess := h.sessionFor(c)
	sess.ToggleSort(field)
	h.GetTrades(c)
}

// PostPage handles POST /api/v1/session/page: an absolute page number or a
// first/prev/next/last navigation action.
//
// PostPage godoc
// @Summary      Navigate pages
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PageRequest  true  "Absolute page or action"
// @Success      200  {object}  dto.TradesResponse  "Updated view"
// @Failure      400  {object}  dto.ErrorResponse   "Bad Request"
// @Failure      503  {object}  dto.ErrorResponse   "Dataset not ready"
// @Router       /api/v1/session/page [post]
func (h *Handler) PostPage(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid page payload", err))
		return
	}

	sess := h.sessionFor(c)
	switch req.Action {
	case "":
		if req.Page < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("page must be >= 1", nil))
			return
		}
		sess.SetPage(req.Page)
	case "first", "prev", "next", "last":
		// Relative moves need the current page count.
		view, err := h.svc.View(sess)
		if datasetError(c, err) {
			return
		}
		sess.Navigate(req.Action, view.TotalPages)
	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown page action", nil))
		return
	}

	h.GetTrades(c)
}

// ToggleFavorite handles POST /api/v1/session/favorites/:representative.
// Toggling twice restores the original set.
//
// ToggleFavorite godoc
// @Summary      Toggle a favorite representative
// @Tags         session
// @Produce      json
// @Param        representative  path  string  true  "Representative name"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/v1/session/favorites/{representative} [post]
func (h *Handler) ToggleFavorite(c *gin.Context) {
	sess := h.sessionFor(c)
	sess.ToggleFavorite(c.Param("representative"))
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// ToggleWatchlist handles POST /api/v1/session/watchlist/:ticker.
//
// ToggleWatchlist godoc
// @Summary      Toggle a watched ticker
// @Tags         session
// @Produce      json
// @Param        ticker  path  string  true  "Ticker symbol"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/v1/session/watchlist/{ticker} [post]
func (h *Handler) ToggleWatchlist(c *gin.Context) {
	sess := h.sessionFor(c)
	sess.ToggleWatchlist(c.Param("ticker"))
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// PostStatsVisibility handles POST /api/v1/session/stats-visibility. Pure
// UI state; the engine never reads the flag.
//
// PostStatsVisibility godoc
// @Summary      Show or hide the statistics panel
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body  dto.StatsVisibilityRequest  true  "Visibility flag"
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/v1/session/stats-visibility [post]
func (h *Handler) PostStatsVisibility(c *gin.Context) {
	var req dto.StatsVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid visibility payload", err))
		return
	}
	sess := h.sessionFor(c)
	sess.SetShowStats(req.Visible)
	c.JSON(http.StatusOK, sessionResponse(sess))
}

func sessionResponse(sess *session.Session) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID: sess.ID(),
		Favorites: sess.Favorites(),
		Watchlist: sess.Watchlist(),
		ShowStats: sess.ShowStats(),
	}
}

// GetStatistics handles GET /api/v1/statistics. The snapshot covers the
// full dataset regardless of the caller's filters.
//
// GetStatistics godoc
// @Summary      Dataset statistics
// @Description  Top representatives and tickers, party distribution, total volume
// @Tags         trades
// @Produce      json
// @Success      200  {object}  models.Statistics
// @Failure      503  {object}  dto.ErrorResponse  "Dataset not ready"
// @Router       /api/v1/statistics [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.svc.Statistics()
	if datasetError(c, err) {
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetOptions handles GET /api/v1/options: the distinct parties, states, and
// sectors for the filter dropdowns.
//
// GetOptions godoc
// @Summary      Filter dropdown options
// @Tags         trades
// @Produce      json
// @Success      200  {object}  models.FilterOptions
// @Failure      503  {object}  dto.ErrorResponse  "Dataset not ready"
// @Router       /api/v1/options [get]
func (h *Handler) GetOptions(c *gin.Context) {
	opts, err := h.svc.Options()
	if datasetError(c, err) {
		return
	}
	c.JSON(http.StatusOK, opts)
}

// ExportCSV handles GET /api/v1/export: the caller's filtered and sorted
// set as a CSV download. All matching records, not just the visible page.
//
// ExportCSV godoc
// @Summary      Export matching trades as CSV
// @Tags         trades
// @Produce      plain
// @Success      200  {string}  string  "CSV content"
// @Failure      503  {object}  dto.ErrorResponse  "Dataset not ready"
// @Router       /api/v1/export [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	sess := h.sessionFor(c)
	content, err := h.svc.ExportCSV(sess)
	if datasetError(c, err) {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+query.ExportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

// GetStatus handles GET /api/v1/status: loading until the startup fetch
// completes, then ready, or error terminally on fetch failure.
//
// GetStatus godoc
// @Summary      Dataset lifecycle state
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/v1/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	status, count, loadErr := h.svc.Status()
	resp := dto.StatusResponse{Status: status, Trades: count}
	if loadErr != nil {
		resp.Detail = loadErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}
