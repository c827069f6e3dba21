package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
)

// Field names a sortable Trade field. Values match the feed's JSON keys so
// the HTTP layer can pass column identifiers through unchanged.
type Field string

const (
	FieldRepresentative   Field = "representative"
	FieldTicker           Field = "ticker"
	FieldParty            Field = "party"
	FieldAmount           Field = "amount"
	FieldTransactionDate  Field = "transaction_date"
	FieldType             Field = "type"
	FieldAssetDescription Field = "asset_description"
	FieldDisclosureDate   Field = "disclosure_date"
	FieldDistrict         Field = "district"
	FieldState            Field = "state"
	FieldSector           Field = "sector"
	FieldIndustry         Field = "industry"
)

// Direction orders ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// SortState is the active sort column and direction.
type SortState struct {
	Field     Field
	Direction Direction
}

// fieldValue returns the string form of a trade field. Unknown field names
// yield "", which compares equal everywhere and leaves the collection in
// its original order under a stable sort.
func fieldValue(t models.Trade, f Field) string {
	switch f {
	case FieldRepresentative:
		return t.Representative
	case FieldTicker:
		return t.Ticker
	case FieldParty:
		return t.Party
	case FieldAmount:
		return t.Amount
	case FieldTransactionDate:
		return t.TransactionDate
	case FieldType:
		return t.Type
	case FieldAssetDescription:
		return t.AssetDescription
	case FieldDisclosureDate:
		return t.DisclosureDate
	case FieldDistrict:
		return t.District
	case FieldState:
		return t.State
	case FieldSector:
		return t.Sector
	case FieldIndustry:
		return t.Industry
	default:
		return ""
	}
}

// Sort orders trades by the given state and returns a fresh slice; the
// input is never mutated. The sort is stable, so records with equal keys
// keep their original relative order and pagination stays deterministic
// across recomputations.
//
// Transaction dates compare as calendar instants rather than strings, since
// the feed mixes date formats whose lexical and chronological orders differ.
// An unparseable date compares as the zero time and therefore sorts before
// every real date in ascending order. All other fields use a locale-aware
// lexical comparison (en-US collation), absent values comparing as "".
func Sort(trades []models.Trade, s SortState) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)

	// Collators are not safe for concurrent use; build one per call.
	col := collate.New(language.AmericanEnglish)

	cmp := func(a, b models.Trade) int {
		if s.Field == FieldTransactionDate {
			ta, _ := parseDate(a.TransactionDate)
			tb, _ := parseDate(b.TransactionDate)
			return ta.Compare(tb)
		}
		return col.CompareString(fieldValue(a, s.Field), fieldValue(b, s.Field))
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if s.Direction == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}
