package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

const (
	// topProductLimit caps the top-seller ranking.
	topProductLimit = 5
	// slowMoverDays is the neglect threshold: an item with no sale in
	// this many trailing days is slow-moving.
	slowMoverDays = 30
)

// ProductRank aggregates sales per item name.
type ProductRank struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SlowMover identifies an item whose most recent sale is older than the
// neglect threshold.
type SlowMover struct {
	Name       string    `json:"name"`
	LastSoldAt time.Time `json:"last_sold_at"`
}

// TopProducts groups sales by item name, summing quantity and revenue,
// and returns up to five items sorted by revenue descending. Ties keep
// the insertion order of first appearance.
func TopProducts(sales []*entity.Sale) []ProductRank {
	index := make(map[string]int)
	ranks := make([]ProductRank, 0)

	for _, s := range sales {
		i, ok := index[s.ItemName]
		if !ok {
			i = len(ranks)
			index[s.ItemName] = i
			ranks = append(ranks, ProductRank{Name: s.ItemName})
		}
		ranks[i].Quantity += s.Quantity
		ranks[i].Revenue = ranks[i].Revenue.Add(s.Total)
	}

	sort.SliceStable(ranks, func(a, b int) bool {
		return ranks[a].Revenue.GreaterThan(ranks[b].Revenue)
	})

	if len(ranks) > topProductLimit {
		ranks = ranks[:topProductLimit]
	}
	return ranks
}

// SlowMovers returns the items whose most recent sale is strictly older
// than 30 days before now, sorted by last-sold date ascending so the
// longest-neglected item comes first. Items absent from the sales
// snapshot never appear.
func SlowMovers(now time.Time, sales []*entity.Sale) []SlowMover {
	lastSold := make(map[string]time.Time)
	order := make([]string, 0)

	for _, s := range sales {
		last, ok := lastSold[s.ItemName]
		if !ok {
			order = append(order, s.ItemName)
		}
		if !ok || s.Date.After(last) {
			lastSold[s.ItemName] = s.Date
		}
	}

	cutoff := now.AddDate(0, 0, -slowMoverDays)
	movers := make([]SlowMover, 0)
	for _, name := range order {
		if lastSold[name].Before(cutoff) {
			movers = append(movers, SlowMover{Name: name, LastSoldAt: lastSold[name]})
		}
	}

	sort.SliceStable(movers, func(a, b int) bool {
		return movers[a].LastSoldAt.Before(movers[b].LastSoldAt)
	})
	return movers
}
