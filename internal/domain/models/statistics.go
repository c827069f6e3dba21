package models

// TradeCount pairs a grouping key (representative name or ticker symbol)
// with the number of trades attributed to it.
//
// swagger:model TradeCount
type TradeCount struct {
	Name  string `json:"name" example:"Nancy Pelosi"`
	Count int    `json:"count" example:"42"`
}

// Statistics summarizes the full raw trade collection. It is computed once
// per dataset load, over every record regardless of any active filters.
//
// Fields:
//   - TopRepresentatives: the five most active members by trade count.
//   - TopStocks: the five most traded tickers by trade count.
//   - PartyDistribution: trade count per party value seen, untruncated.
//   - TotalVolume: sum of the parsed dollar amounts across all records.
//
// swagger:model Statistics
type Statistics struct {
	TopRepresentatives []TradeCount   `json:"top_representatives"`
	TopStocks          []TradeCount   `json:"top_stocks"`
	PartyDistribution  map[string]int `json:"party_distribution"`
	TotalVolume        int64          `json:"total_volume" example:"128450000"`
}

// FilterOptions lists the distinct values present in the dataset for the
// dropdown selectors of the filter panel. Empty values are omitted.
type FilterOptions struct {
	Parties []string `json:"parties"`
	States  []string `json:"states"`
	Sectors []string `json:"sectors"`
}
