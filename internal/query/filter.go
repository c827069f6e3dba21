package query

import (
	"strings"
	"time"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
)

// Selector is an equality constraint on a single record field. The zero
// value is unconstrained and matches everything, so a FilterState with no
// selectors set filters nothing. Using an explicit constraint type instead
// of an "all" sentinel string keeps real data values (a party literally
// named "all", say) from colliding with the no-constraint case.
type Selector struct {
	value string
	set   bool
}

// Equals returns a Selector that matches only the given value.
func Equals(v string) Selector { return Selector{value: v, set: true} }

// Any returns the unconstrained Selector.
func Any() Selector { return Selector{} }

// Matches reports whether v satisfies the constraint.
func (s Selector) Matches(v string) bool { return !s.set || s.value == v }

// Constrained reports whether the selector carries a value.
func (s Selector) Constrained() bool { return s.set }

// Value returns the constrained value, or "" when unconstrained.
func (s Selector) Value() string { return s.value }

// AmountBucket names one of the fixed transaction-size ranges offered by the
// amount dropdown. Bucket edges are inclusive on the upper side: exactly
// 15000 is Under15K, exactly 50000 is From15KTo50K.
type AmountBucket string

const (
	BucketAny          AmountBucket = ""
	BucketUnder15K     AmountBucket = "under15k"
	BucketFrom15KTo50K AmountBucket = "15k-50k"
	BucketOver50K      AmountBucket = "over50k"
)

// matches reports whether a parsed dollar amount falls in the bucket.
// Unknown bucket names match everything: an unrecognized dropdown value
// imposes no constraint.
func (b AmountBucket) matches(amount int64) bool {
	switch b {
	case BucketUnder15K:
		return amount <= 15000
	case BucketFrom15KTo50K:
		return amount > 15000 && amount <= 50000
	case BucketOver50K:
		return amount > 50000
	default:
		return true
	}
}

// DateRange bounds transaction dates, inclusive on both ends. A nil bound
// imposes no constraint.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// FilterState is the full set of active constraints. The zero value matches
// every record.
type FilterState struct {
	Search string
	Party  Selector
	Type   Selector
	State  Selector
	Sector Selector
	Amount AmountBucket
	Dates  DateRange
}

// Matches decides whether a single trade is visible under the filter state.
// All constraints combine with logical AND.
//
// Search text matches case-insensitively as a substring of representative,
// ticker, or asset description; empty search text always matches, and an
// absent field never matches a non-empty search. The date range compares
// calendar instants, so a record whose transaction date cannot be parsed
// fails any set date bound.
func Matches(t models.Trade, f FilterState) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Representative), needle) &&
			!strings.Contains(strings.ToLower(t.Ticker), needle) &&
			!strings.Contains(strings.ToLower(t.AssetDescription), needle) {
			return false
		}
	}

	if !f.Party.Matches(t.Party) || !f.Type.Matches(t.Type) ||
		!f.State.Matches(t.State) || !f.Sector.Matches(t.Sector) {
		return false
	}

	if !f.Amount.matches(ParseAmount(t.Amount)) {
		return false
	}

	if f.Dates.Start != nil || f.Dates.End != nil {
		d, ok := parseDate(t.TransactionDate)
		if !ok {
			return false
		}
		if f.Dates.Start != nil && d.Before(*f.Dates.Start) {
			return false
		}
		if f.Dates.End != nil && d.After(*f.Dates.End) {
			return false
		}
	}

	return true
}

// Filter returns the trades visible under f, preserving collection order.
// The result is a fresh slice; the input is never mutated.
func Filter(trades []models.Trade, f FilterState) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if Matches(t, f) {
			out = append(out, t)
		}
	}
	return out
}
