package coingecko

// marketChartResponse mirrors /coins/{id}/market_chart: each entry is a
// [unix_ms, value] pair.
type marketChartResponse struct {
	Prices       [][]float64 `json:"prices"`
	MarketCaps   [][]float64 `json:"market_caps"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

// coinMarketRow mirrors one element of /coins/markets. CoinGecko reports the
// absolute 24h market-cap delta, from which the prior cap is reconstructed.
type coinMarketRow struct {
	ID                 string  `json:"id"`
	MarketCap          float64 `json:"market_cap"`
	MarketCapChange24h float64 `json:"market_cap_change_24h"`
}
