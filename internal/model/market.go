package model

import "time"

// PriceSample is one daily market observation for an asset.
// Shared by provider, score engine and serialization (json, parquet).
type PriceSample struct {
	Timestamp int64   `json:"t" parquet:"t"` // Unix timestamp in milliseconds
	Price     float64 `json:"p" parquet:"p"`
	Volume    float64 `json:"v" parquet:"v"` // Total traded volume over the day
}

// Time returns the sample timestamp as UTC time.
func (s PriceSample) Time() time.Time {
	return time.UnixMilli(s.Timestamp).UTC()
}

// StableCapSample holds current and 24h-prior market capitalization for one stablecoin.
type StableCapSample struct {
	ID                string  `json:"id" parquet:"id"`
	MarketCapNow      float64 `json:"market_cap" parquet:"market_cap"`
	MarketCapPrior24h float64 `json:"market_cap_prior_24h" parquet:"market_cap_prior_24h"`
}

// ScoreResult is the output of one scoring cycle. Results are independent across
// cycles; nothing is carried over between runs.
type ScoreResult struct {
	Timestamp     time.Time `json:"timestamp"`
	RunID         string    `json:"run_id"`
	ScoreETF      float64   `json:"score_etf"`
	ScoreStables  float64   `json:"score_stables"`
	ScoreStress   float64   `json:"score_stress"` // always in [0, 1]
	ScoreWeighted float64   `json:"score_weighted"`
}
