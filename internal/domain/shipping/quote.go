package shipping

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Quote is a carrier rate offer for a given parcel and destination,
// with markup already applied. Quotes are ephemeral: one is flattened
// onto an order at creation time, the rest are discarded.
type Quote struct {
	RateID        string
	Provider      string
	ServiceLevel  string
	DurationTerms string
	Amount        decimal.Decimal
	Currency      string
}

// SortQuotes orders quotes cheapest-first; equal amounts are tie-broken
// by provider name so the ordering is deterministic
func SortQuotes(quotes []Quote) {
	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].Amount.Equal(quotes[j].Amount) {
			return quotes[i].Provider < quotes[j].Provider
		}
		return quotes[i].Amount.LessThan(quotes[j].Amount)
	})
}
