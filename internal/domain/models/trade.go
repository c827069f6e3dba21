package models

// Trade represents a single disclosed stock transaction by a member of
// Congress, as published in the public house-stock-watcher JSON feed.
//
// Dates arrive as display strings (usually YYYY-MM-DD, occasionally
// MM/DD/YYYY) and are kept verbatim; the query engine parses them on demand.
// Amount is a display range such as "$1,001 - $15,000". Optional fields may
// be absent from the feed and decode to their zero value; an absent field is
// "unknown", never an error.
type Trade struct {
	Representative   string `json:"representative"`
	Ticker           string `json:"ticker"`
	Party            string `json:"party"`
	Amount           string `json:"amount,omitempty"`
	TransactionDate  string `json:"transaction_date"`
	Type             string `json:"type"`
	AssetDescription string `json:"asset_description"`
	DisclosureDate   string `json:"disclosure_date"`
	District         string `json:"district"`
	State            string `json:"state"`
	Sector           string `json:"sector,omitempty"`
	Industry         string `json:"industry,omitempty"`
	PTRLink          string `json:"ptr_link,omitempty"`
}
