//go:build wireinject
// +build wireinject

package main

import (
	"btc-signals/internal/app"
	"btc-signals/internal/provider"
	"btc-signals/internal/provider/coingecko"

	"github.com/google/wire"
)

// InitializeApp builds App (config, data source, engine, saver) via Wire.
// Caller must call a.Source.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideEngine,
		app.ProvideScoreSaver,
		app.ProvideDataSource,
		wire.Bind(new(provider.MarketDataSource), new(*coingecko.Client)),
		wire.Struct(new(App), "Config", "Source", "Engine", "Saver"),
	)
	return nil, nil
}
