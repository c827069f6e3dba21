// Package query implements the trade-list query engine: filtering, sorting,
// pagination, statistics, and CSV export over the in-memory trade collection.
// Every function in this package is pure and total: given any well-formed
// Trade value, however sparse, it returns a result and never panics.
package query

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches a dollar sign followed by a digit run with optional
// thousands separators, e.g. the "$1,001" prefix of "$1,001 - $15,000".
var amountPattern = regexp.MustCompile(`\$([0-9][0-9,]*)`)

// ParseAmount extracts the first dollar amount from a display-formatted
// string such as "$1,001 - $15,000" and returns it as an integer.
//
// Only the first matched number is used; disclosure amounts are ranges and
// the lower bound stands in for the whole range. Commas are stripped before
// conversion. An empty string, or one with no recognizable "$<digits>"
// prefix anywhere, yields 0. The function never returns an error.
func ParseAmount(amount string) int64 {
	m := amountPattern.FindStringSubmatch(amount)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
	if err != nil {
		// A comma-only or overflowing run; treat as unparseable.
		return 0
	}
	return n
}
