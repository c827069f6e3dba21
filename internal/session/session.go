// Package session owns the mutable per-user dashboard state: filters, sort,
// page, favorites, watchlist, and the stats panel flag. The query engine
// stays a pure function; everything stateful lives here.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rfsouza/capitolwatch/internal/query"
)

// Session is one user's dashboard state. All methods are safe for
// concurrent use. The raw search text is staged immediately (so the input
// box can echo it back) while the value the filter predicate sees commits
// only after the debounce window.
type Session struct {
	mu        sync.Mutex
	id        string
	state     query.State
	staging   string // raw search text, pre-debounce
	debounce  *Debouncer
	favorites map[string]struct{}
	watchlist map[string]struct{}
	showStats bool
}

// newSession starts with the dashboard's initial state: no filters,
// newest transactions first, page 1.
func newSession(id string, window time.Duration) *Session {
	s := &Session{
		id: id,
		state: query.State{
			Sort: query.SortState{Field: query.FieldTransactionDate, Direction: query.Desc},
			Page: 1,
		},
		favorites: make(map[string]struct{}),
		watchlist: make(map[string]struct{}),
	}
	s.debounce = NewDebouncer(window, s.commitSearch)
	return s
}

func (s *Session) commitSearch(v string) {
	s.mu.Lock()
	s.state.Filter.Search = v
	s.mu.Unlock()
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns a copy of the current engine input state.
func (s *Session) State() query.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetSearch stages new search text. The committed value the engine sees
// updates only after the quiescence window elapses with no newer input.
func (s *Session) SetSearch(v string) {
	s.mu.Lock()
	s.staging = v
	s.mu.Unlock()
	s.debounce.Set(v)
}

// FlushSearch commits any staged search text immediately. Tests and
// export-after-typing flows use it to skip the wait.
func (s *Session) FlushSearch() { s.debounce.Flush() }

// UpdateFilter applies fn to the filter state under the session lock.
// Everything except search text commits through here, immediately and
// synchronously. The current page is deliberately left untouched: a filter
// change can leave the page beyond the new last page, and the slicer then
// yields an empty page rather than an error.
func (s *Session) UpdateFilter(fn func(*query.FilterState)) {
	s.mu.Lock()
	fn(&s.state.Filter)
	s.mu.Unlock()
}

// ToggleSort applies column-click semantics: clicking the active column
// flips the direction, clicking a new column selects it ascending.
func (s *Session) ToggleSort(f query.Field) query.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Sort.Field == f {
		s.state.Sort.Direction = s.state.Sort.Direction.Toggle()
	} else {
		s.state.Sort = query.SortState{Field: f, Direction: query.Asc}
	}
	return s.state.Sort
}

// SetPage moves to an absolute 1-based page. Values below 1 clamp to 1;
// pages beyond the end are allowed and render empty.
func (s *Session) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.state.Page = page
	s.mu.Unlock()
}

// Navigate moves relative to the current page given the current page count:
// "first", "prev", "next", or "last". Unknown actions are ignored.
func (s *Session) Navigate(action string, totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch action {
	case "first":
		s.state.Page = 1
	case "prev":
		if s.state.Page > 1 {
			s.state.Page--
		}
	case "next":
		if s.state.Page < totalPages {
			s.state.Page++
		}
	case "last":
		if totalPages > 0 {
			s.state.Page = totalPages
		}
	}
}

// ToggleFavorite adds the representative to the favorites set, or removes
// it when already present. Toggling twice restores the original set.
func (s *Session) ToggleFavorite(representative string) {
	s.mu.Lock()
	toggle(s.favorites, representative)
	s.mu.Unlock()
}

// ToggleWatchlist adds or removes the ticker from the watchlist.
func (s *Session) ToggleWatchlist(ticker string) {
	s.mu.Lock()
	toggle(s.watchlist, ticker)
	s.mu.Unlock()
}

func toggle(set map[string]struct{}, member string) {
	if _, ok := set[member]; ok {
		delete(set, member)
	} else {
		set[member] = struct{}{}
	}
}

// SetShowStats sets the statistics panel visibility flag. Pure UI state;
// the engine never reads it.
func (s *Session) SetShowStats(visible bool) {
	s.mu.Lock()
	s.showStats = visible
	s.mu.Unlock()
}

// Favorites returns the favorites set as a sorted slice.
func (s *Session) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.favorites)
}

// Watchlist returns the watchlist set as a sorted slice.
func (s *Session) Watchlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.watchlist)
}

// ShowStats reports the statistics panel flag.
func (s *Session) ShowStats() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showStats
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Store holds live sessions by id. Sessions exist only in memory and die
// with the process; nothing about a session persists across restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	window   time.Duration
}

// NewStore builds a session store whose sessions debounce search text over
// the given window.
func NewStore(window time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		window:   window,
	}
}

// Get returns the session with the given id, creating a fresh one (with a
// new UUID) when id is empty or unknown.
func (st *Store) Get(id string) *Session {
	if id != "" {
		st.mu.RLock()
		s, ok := st.sessions[id]
		st.mu.RUnlock()
		if ok {
			return s
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s := newSession(id, st.window)
	st.sessions[id] = s
	return s
}
