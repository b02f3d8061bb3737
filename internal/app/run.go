package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"btc-signals/internal/model"
	"btc-signals/internal/provider"
	"btc-signals/internal/saver"
	"btc-signals/internal/score"
)

// Cycle runs one fetch → score → persist pass. Cycles carry no state between
// runs; every invocation is independent.
type Cycle struct {
	cfg    *Config
	src    provider.MarketDataSource
	engine *score.Engine
	sink   saver.ScoreSaver
}

func NewCycle(cfg *Config, src provider.MarketDataSource, engine *score.Engine, sink saver.ScoreSaver) *Cycle {
	return &Cycle{cfg: cfg, src: src, engine: engine, sink: sink}
}

// Run executes one cycle. A fetch failure aborts before anything is written,
// so the previous history rows and snapshot stay intact. A write failure is
// returned to the caller; no retry within the cycle.
func (c *Cycle) Run(ctx context.Context) (model.ScoreResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.FetchTimeout())
	defer cancel()

	samples, err := c.src.FetchDailyMarket(ctx, c.cfg.Asset, c.cfg.WindowDays)
	if err != nil {
		return model.ScoreResult{}, fmt.Errorf("fetch %s market: %w", c.cfg.Asset, err)
	}
	caps, err := c.src.FetchStableCaps(ctx, c.cfg.StableIDs)
	if err != nil {
		return model.ScoreResult{}, fmt.Errorf("fetch stablecoin caps: %w", err)
	}

	etf := c.engine.MomentumVolume(samples)
	stables := c.engine.Stables(caps)
	stress := c.engine.Stress(samples)

	res := model.ScoreResult{
		Timestamp:     time.Now().UTC(),
		RunID:         uuid.NewString(),
		ScoreETF:      etf,
		ScoreStables:  stables,
		ScoreStress:   stress,
		ScoreWeighted: c.engine.Weighted(etf, stables, stress),
	}

	if err := os.MkdirAll(c.cfg.DataDir, 0755); err != nil {
		return res, fmt.Errorf("create data dir: %w", err)
	}
	if err := c.sink.Save(res, c.cfg.DataDir); err != nil {
		return res, fmt.Errorf("write history (%s): %w", c.sink.Extension(), err)
	}
	if err := saver.WriteSnapshot(c.cfg.SnapshotPath(), res); err != nil {
		return res, fmt.Errorf("write snapshot: %w", err)
	}

	slog.Info("cycle done",
		"run_id", res.RunID,
		"samples", len(samples),
		"stables", len(caps),
		"score_etf", res.ScoreETF,
		"score_stables", res.ScoreStables,
		"score_stress", res.ScoreStress,
		"score_weighted", res.ScoreWeighted,
	)
	return res, nil
}
