package query

import "github.com/rfsouza/capitolwatch/internal/domain/models"

// State bundles every input the engine derives a view from. It carries no
// behavior; the owning layer (the session store) mutates it on UI events and
// hands it back in whole.
type State struct {
	Filter FilterState
	Sort   SortState
	Page   int
}

// View is one fully derived rendering of the collection: the visible page
// plus the figures the pagination display needs.
type View struct {
	Trades     []models.Trade
	Total      int // records matching the filter, across all pages
	TotalPages int
	Page       int
}

// Matching returns the filtered, sorted collection for a state. This is the
// set the CSV export covers.
func Matching(trades []models.Trade, st State) []models.Trade {
	return Sort(Filter(trades, st.Filter), st.Sort)
}

// Apply derives the view for a state: filter (collection order preserved),
// stable sort, then page slice. It is a pure function of its inputs (same
// records and state always produce the same view) and never mutates the
// raw collection.
func Apply(trades []models.Trade, st State, pageSize int) View {
	matching := Matching(trades, st)
	return View{
		Trades:     Page(matching, st.Page, pageSize),
		Total:      len(matching),
		TotalPages: TotalPages(len(matching), pageSize),
		Page:       st.Page,
	}
}
