package main

import (
	"btc-signals/internal/app"
	"btc-signals/internal/provider"
	"btc-signals/internal/saver"
	"btc-signals/internal/score"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Source provider.MarketDataSource
	Engine *score.Engine
	Saver  saver.ScoreSaver
}
