package calc

import (
	"cmp"
	"slices"

	"github.com/Mpukk3/electricity-twitter-bot/types"
)

// MostExpensive returns the n highest-priced hours in descending price order.
// Equally priced hours keep their chronological order. Returns nil when there
// are fewer than n prices. The input is never mutated.
func MostExpensive(prices []types.SpotPrice, n int) []types.SpotPrice {
	if len(prices) < n {
		return nil
	}

	sorted := slices.Clone(prices)
	slices.SortStableFunc(sorted, func(a, b types.SpotPrice) int {
		return cmp.Compare(b.Price, a.Price)
	})

	return sorted[:n]
}
