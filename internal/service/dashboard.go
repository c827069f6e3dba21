package service

import (
	"github.com/rfsouza/capitolwatch/internal/domain/models"
	"github.com/rfsouza/capitolwatch/internal/query"
	"github.com/rfsouza/capitolwatch/internal/session"
)

// DashboardService is the business-logic surface the HTTP handlers talk to.
// It composes the pure query engine with the per-session state; every view
// is re-derived from (raw records, session state) on each call, so two
// calls with the same state always see the same view.
type DashboardService interface {
	Session(id string) *session.Session
	View(sess *session.Session) (query.View, error)
	ExportCSV(sess *session.Session) (string, error)
	Statistics() (models.Statistics, error)
	Options() (models.FilterOptions, error)
	Status() (string, int, error)
}

type dashboardService struct {
	data     *Dataset
	sessions *session.Store
	pageSize int
}

// NewDashboardService wires the dataset and session store behind the
// service interface. pageSize is the configured itemsPerPage.
func NewDashboardService(data *Dataset, sessions *session.Store, pageSize int) DashboardService {
	return &dashboardService{data: data, sessions: sessions, pageSize: pageSize}
}

// Session returns the live session for id, creating one when id is empty or
// unknown.
func (s *dashboardService) Session(id string) *session.Session {
	return s.sessions.Get(id)
}

// View derives the session's current page: filter, stable sort, slice.
func (s *dashboardService) View(sess *session.Session) (query.View, error) {
	trades, err := s.data.Trades()
	if err != nil {
		return query.View{}, err
	}
	return query.Apply(trades, sess.State(), s.pageSize), nil
}

// ExportCSV serializes the session's full filtered and sorted set, every
// matching record rather than just the visible page.
func (s *dashboardService) ExportCSV(sess *session.Session) (string, error) {
	trades, err := s.data.Trades()
	if err != nil {
		return "", err
	}
	return query.ExportCSV(query.Matching(trades, sess.State())), nil
}

// Statistics returns the whole-dataset snapshot, independent of any
// session's filters.
func (s *dashboardService) Statistics() (models.Statistics, error) {
	return s.data.Statistics()
}

// Options returns the dropdown option sets.
func (s *dashboardService) Options() (models.FilterOptions, error) {
	return s.data.Options()
}

// Status reports the dataset lifecycle state.
func (s *dashboardService) Status() (string, int, error) {
	return s.data.Status()
}
