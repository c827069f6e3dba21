package query

import "time"

// dateLayouts covers the formats observed in the feed. Transaction dates are
// usually ISO (2021-03-11) while disclosure dates tend to be US style
// (03/15/2021); both appear in either field often enough to try both.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006-01-02T15:04:05",
}

// parseDate parses a feed date string as a calendar instant. The second
// return value reports whether any known layout matched; callers decide how
// an unparseable date behaves (sorting treats it as the zero time, range
// filters treat it as out of range).
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
