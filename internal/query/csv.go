package query

import (
	"fmt"
	"strings"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
)

// ExportFilename is the download name for the CSV artifact.
const ExportFilename = "congress_trades.csv"

// csvHeader fixes the export column order.
var csvHeader = []string{
	"Date",
	"Representative",
	"Party",
	"Stock",
	"Transaction Type",
	"Amount",
	"Description",
}

// ExportCSV serializes trades to CSV text: the header row, then one row per
// record, fields joined by commas and rows by newlines. The input should be
// the filtered and sorted set, not a single page; export covers every
// matching record.
//
// Fields are written verbatim with no quoting or escaping, keeping the
// file format existing consumers already parse. A comma inside an asset
// description therefore shifts the columns of that row.
func ExportCSV(trades []models.Trade) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, t := range trades {
		row := []string{
			displayDate(t.TransactionDate),
			t.Representative,
			t.Party,
			t.Ticker,
			t.Type,
			t.Amount,
			t.AssetDescription,
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// displayDate renders a feed date in en-US short form (M/D/YYYY, no leading
// zeros). An unparseable date is passed through unchanged.
func displayDate(s string) string {
	d, ok := parseDate(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%d/%d/%d", int(d.Month()), d.Day(), d.Year())
}
