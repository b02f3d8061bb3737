package app

import (
	"fmt"

	"btc-signals/internal/provider/coingecko"
	"btc-signals/internal/saver"
	"btc-signals/internal/score"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideEngine builds the score engine from config (for Wire).
func ProvideEngine(cfg *Config) *score.Engine {
	return score.NewEngine(cfg.EngineParams())
}

// ProvideScoreSaver creates the history saver from config (for Wire).
// Returns an error if SaveFormat is not supported.
func ProvideScoreSaver(cfg *Config) (saver.ScoreSaver, error) {
	s := saver.NewScoreSaver(cfg.SaveFormat, cfg.Pair)
	if s == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, json, parquet)", cfg.SaveFormat)
	}
	return s, nil
}

// ProvideDataSource creates the CoinGecko client from config (for Wire).
// Caller must Close() it when shutting down.
func ProvideDataSource(cfg *Config) *coingecko.Client {
	return coingecko.New(coingecko.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.FetchTimeout(),
	})
}
