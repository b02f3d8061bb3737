package provider

import (
	"context"

	"btc-signals/internal/model"
)

// MarketDataSource is the abstraction used by the application when fetching
// market data. Implementations own their transport and resource cleanup.
// Errors signal failure distinctly from an empty result: an empty slice with
// a nil error means the upstream genuinely had no data for the query.
type MarketDataSource interface {
	Name() string

	// FetchDailyMarket returns a time-ordered (oldest first) series of daily
	// price/volume samples covering the trailing days for one asset.
	FetchDailyMarket(ctx context.Context, asset string, days int) ([]model.PriceSample, error)

	// FetchStableCaps returns current and 24h-prior market capitalization for
	// the given stablecoin identifiers.
	FetchStableCaps(ctx context.Context, ids []string) ([]model.StableCapSample, error)

	Close() error
}
