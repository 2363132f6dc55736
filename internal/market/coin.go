package market

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// CoinMarketEntry is a coin as listed by the markets endpoint.
type CoinMarketEntry struct {
	// ID is the upstream coin identifier.
	ID string
	// Name is the display name, not guaranteed unique.
	Name string
	// Symbol is the ticker symbol.
	Symbol string
	// Image is the coin logo url.
	Image string
	// CurrentPrice is the latest price in the quote currency.
	CurrentPrice float64
	// MarketCapRank is the market cap ranking of the coin.
	MarketCapRank int
	// Sparkline holds the hourly prices of the trailing 7 days, oldest first.
	Sparkline []float64
}

// Key returns a key that identifies the coin within a listing.
func (c *CoinMarketEntry) Key() string {
	if c.ID != "" {
		return c.ID
	}

	return c.Name
}

// ParseCoins parses coin market entries from the provided json data.
func ParseCoins(data []byte) ([]CoinMarketEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json payload")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("expected a json array of coins, got %s", root.Type.String())
	}

	items := root.Array()
	coins := make([]CoinMarketEntry, 0, len(items))
	for idx := range items {
		item := items[idx]

		prices := item.Get("sparkline_in_7d.price").Array()
		sparkline := make([]float64, len(prices))
		for pdx := range prices {
			sparkline[pdx] = prices[pdx].Float()
		}

		coins = append(coins, CoinMarketEntry{
			ID:            item.Get("id").String(),
			Name:          item.Get("name").String(),
			Symbol:        item.Get("symbol").String(),
			Image:         item.Get("image").String(),
			CurrentPrice:  item.Get("current_price").Float(),
			MarketCapRank: int(item.Get("market_cap_rank").Int()),
			Sparkline:     sparkline,
		})
	}

	return coins, nil
}
