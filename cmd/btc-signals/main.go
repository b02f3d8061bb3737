package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"btc-signals/internal/app"
	"btc-signals/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Source.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using data source", "source", a.Source.Name(), "asset", cfg.Asset, "pair", cfg.Pair)
	slog.Info("output", "dir", cfg.DataDir, "format", cfg.SaveFormat)

	cycle := app.NewCycle(cfg, a.Source, a.Engine, a.Saver)

	if cfg.RunEveryHours > 0 {
		app.RunLoop(cycle, time.Duration(cfg.RunEveryHours)*time.Hour)
		return
	}

	if _, err := cycle.Run(context.Background()); err != nil {
		slog.Error("cycle failed", "error", err)
		os.Exit(1)
	}
}
