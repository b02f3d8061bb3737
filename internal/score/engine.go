// Package score computes the four indicator scores from fetched market data.
// All operations are pure: no I/O, no hidden state, deterministic for identical input.
package score

import (
	"btc-signals/internal/model"
)

// Weights for combining the three component scores into the weighted score.
// They are not required to sum to 1.
type Weights struct {
	ETF     float64 `yaml:"etf"`
	Stables float64 `yaml:"stables"`
	Stress  float64 `yaml:"stress"`
}

// Params configures the engine. Everything is explicit; the engine reads no
// globals and no environment.
type Params struct {
	// MomentumWeight and VolumeWeight combine price momentum and volume
	// impulse into the ETF score.
	MomentumWeight float64
	VolumeWeight   float64

	// StressLookback is the number of daily returns used for the stress score.
	StressLookback int

	// StressFloor and StressCeil bound the raw return volatility before it is
	// rescaled to [0, 1]. A daily-return stddev of StressFloor or below maps
	// to 0, StressCeil or above maps to 1.
	StressFloor float64
	StressCeil  float64

	Weights Weights
}

// DefaultParams returns the standard engine parameters: 0.7/0.3 momentum/volume
// split, 14-day stress lookback with a 0.00–0.10 volatility range, and
// 0.6/0.3/0.1 component weights.
func DefaultParams() Params {
	return Params{
		MomentumWeight: 0.7,
		VolumeWeight:   0.3,
		StressLookback: 14,
		StressFloor:    0.0,
		StressCeil:     0.10,
		Weights:        Weights{ETF: 0.6, Stables: 0.3, Stress: 0.1},
	}
}

// Engine derives indicator scores from price and market-cap series.
type Engine struct {
	p Params
}

func NewEngine(p Params) *Engine {
	return &Engine{p: p}
}

// MomentumVolume combines window momentum with volume impulse into the ETF
// proxy score. Requires at least 2 samples; fewer degrade to 0. The result is
// unbounded, positive means bullish momentum with rising volume.
func (e *Engine) MomentumVolume(samples []model.PriceSample) float64 {
	if len(samples) < 2 {
		return 0.0
	}
	first := samples[0]
	last := samples[len(samples)-1]

	momentum := safeDiv(last.Price-first.Price, first.Price)

	meanVol := mean(volumes(samples))
	impulse := safeDiv(last.Volume-meanVol, meanVol)

	return e.p.MomentumWeight*momentum + e.p.VolumeWeight*impulse
}

// Stables scores the 24h change in total stablecoin market cap, sign-inverted:
// shrinking stablecoin cap reads as rising risk appetite and yields a higher
// score. An empty set degrades to 0.
func (e *Engine) Stables(caps []model.StableCapSample) float64 {
	if len(caps) == 0 {
		return 0.0
	}
	var totalNow, totalPrior float64
	for _, c := range caps {
		totalNow += c.MarketCapNow
		totalPrior += c.MarketCapPrior24h
	}
	rel := safeDiv(totalNow-totalPrior, totalPrior)
	return -rel
}

// Stress maps recent daily-return volatility into [0, 1]: 0 is calm, 1 is
// extreme. Uses the population standard deviation of up to StressLookback
// trailing daily returns; shorter series fall back to whatever returns are
// available, and fewer than 2 prices degrade to 0. The result saturates at
// both ends of [StressFloor, StressCeil].
func (e *Engine) Stress(samples []model.PriceSample) float64 {
	if len(samples) < 2 {
		return 0.0
	}
	points := samples
	if n := e.p.StressLookback + 1; len(points) > n {
		points = points[len(points)-n:]
	}
	rets := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		rets = append(rets, safeDiv(points[i].Price-points[i-1].Price, points[i-1].Price))
	}
	return norm01(pstdev(rets), e.p.StressFloor, e.p.StressCeil)
}

// Weighted is the linear combination of the three component scores using the
// configured weights. No clamping and no weight-sum validation.
func (e *Engine) Weighted(etf, stables, stress float64) float64 {
	w := e.p.Weights
	return w.ETF*etf + w.Stables*stables + w.Stress*stress
}

func volumes(samples []model.PriceSample) []float64 {
	vs := make([]float64, len(samples))
	for i, s := range samples {
		vs[i] = s.Volume
	}
	return vs
}
