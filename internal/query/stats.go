package query

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rfsouza/capitolwatch/internal/domain/models"
)

// topN is how many representatives and tickers the statistics panel shows.
const topN = 5

// Statistics computes the summary snapshot over the full raw collection.
// It deliberately ignores any active filters: the panel describes the whole
// dataset, not the current view.
//
// The four metrics are independent single passes over the collection, so
// they run concurrently; each goroutine owns its own output field.
func Statistics(trades []models.Trade) models.Statistics {
	var stats models.Statistics

	var g errgroup.Group
	g.Go(func() error {
		stats.TopRepresentatives = topCounts(trades, func(t models.Trade) string { return t.Representative })
		return nil
	})
	g.Go(func() error {
		stats.TopStocks = topCounts(trades, func(t models.Trade) string { return t.Ticker })
		return nil
	})
	g.Go(func() error {
		dist := make(map[string]int)
		for _, t := range trades {
			dist[t.Party]++
		}
		stats.PartyDistribution = dist
		return nil
	})
	g.Go(func() error {
		var total int64
		for _, t := range trades {
			total += ParseAmount(t.Amount)
		}
		stats.TotalVolume = total
		return nil
	})
	_ = g.Wait() // the passes cannot fail

	return stats
}

// topCounts group-counts trades by the given key and returns the topN keys
// by count, descending. The sort is stable over first-encounter order, so
// ties resolve to whichever key appeared first in the collection.
func topCounts(trades []models.Trade, key func(models.Trade) string) []models.TradeCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range trades {
		k := key(t)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	ranked := make([]models.TradeCount, 0, len(order))
	for _, k := range order {
		ranked = append(ranked, models.TradeCount{Name: k, Count: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Options collects the distinct non-empty party, state, and sector values in
// first-encounter order, for the filter panel dropdowns.
func Options(trades []models.Trade) models.FilterOptions {
	return models.FilterOptions{
		Parties: distinct(trades, func(t models.Trade) string { return t.Party }),
		States:  distinct(trades, func(t models.Trade) string { return t.State }),
		Sectors: distinct(trades, func(t models.Trade) string { return t.Sector }),
	}
}

func distinct(trades []models.Trade, key func(models.Trade) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range trades {
		k := key(t)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
