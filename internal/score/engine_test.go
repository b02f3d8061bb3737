package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btc-signals/internal/model"
)

func daily(prices []float64, vols []float64) []model.PriceSample {
	samples := make([]model.PriceSample, len(prices))
	for i := range prices {
		samples[i] = model.PriceSample{
			Timestamp: int64(i) * 86_400_000,
			Price:     prices[i],
			Volume:    vols[i],
		}
	}
	return samples
}

func constSeries(n int, price, vol float64) []model.PriceSample {
	prices := make([]float64, n)
	vols := make([]float64, n)
	for i := range prices {
		prices[i] = price
		vols[i] = vol
	}
	return daily(prices, vols)
}

func TestMomentumVolume_LinearRise(t *testing.T) {
	// 31 daily samples rising linearly 100 -> 130 with constant volume:
	// momentum = 0.30, volume impulse = 0, score = 0.7 * 0.30 = 0.21.
	prices := make([]float64, 31)
	vols := make([]float64, 31)
	for i := range prices {
		prices[i] = 100.0 + float64(i)
		vols[i] = 1000.0
	}
	e := NewEngine(DefaultParams())

	got := e.MomentumVolume(daily(prices, vols))
	assert.InDelta(t, 0.21, got, 1e-12)
}

func TestMomentumVolume_ConstantPrice(t *testing.T) {
	// Flat prices leave only the volume-impulse contribution.
	samples := daily(
		[]float64{50, 50, 50, 50},
		[]float64{100, 100, 100, 200},
	)
	e := NewEngine(DefaultParams())

	// mean volume = 125, impulse = (200-125)/125 = 0.6, score = 0.3 * 0.6
	got := e.MomentumVolume(samples)
	assert.InDelta(t, 0.18, got, 1e-12)
}

func TestMomentumVolume_TooFewSamples(t *testing.T) {
	e := NewEngine(DefaultParams())
	assert.Equal(t, 0.0, e.MomentumVolume(nil))
	assert.Equal(t, 0.0, e.MomentumVolume(constSeries(1, 100, 1000)))
}

func TestMomentumVolume_ZeroVolume(t *testing.T) {
	// All-zero volume means a zero mean; the impulse term degrades to 0
	// instead of dividing by zero.
	samples := daily([]float64{100, 110}, []float64{0, 0})
	e := NewEngine(DefaultParams())

	got := e.MomentumVolume(samples)
	assert.InDelta(t, 0.7*0.10, got, 1e-12)
}

func TestStables_Inversion(t *testing.T) {
	// Total cap shrank 10% -> raw change -0.10 -> score +0.10.
	caps := []model.StableCapSample{
		{ID: "tether", MarketCapNow: 500, MarketCapPrior24h: 600},
		{ID: "usd-coin", MarketCapNow: 300, MarketCapPrior24h: 300},
		{ID: "dai", MarketCapNow: 100, MarketCapPrior24h: 100},
	}
	e := NewEngine(DefaultParams())

	got := e.Stables(caps)
	assert.InDelta(t, 0.10, got, 1e-12)
}

func TestStables_ZeroPrior(t *testing.T) {
	caps := []model.StableCapSample{
		{ID: "tether", MarketCapNow: 900, MarketCapPrior24h: 0},
	}
	e := NewEngine(DefaultParams())
	assert.Equal(t, 0.0, e.Stables(caps))
}

func TestStables_EmptySet(t *testing.T) {
	e := NewEngine(DefaultParams())
	assert.Equal(t, 0.0, e.Stables(nil))
}

func TestStress_Bounds(t *testing.T) {
	e := NewEngine(DefaultParams())

	cases := map[string][]model.PriceSample{
		"flat":     constSeries(20, 100, 1000),
		"mild":     daily([]float64{100, 101, 100, 102, 101, 103}, []float64{1, 1, 1, 1, 1, 1}),
		"violent":  daily([]float64{100, 150, 80, 160, 70, 180}, []float64{1, 1, 1, 1, 1, 1}),
		"twoPoint": daily([]float64{100, 105}, []float64{1, 1}),
	}
	for name, samples := range cases {
		got := e.Stress(samples)
		assert.GreaterOrEqual(t, got, 0.0, name)
		assert.LessOrEqual(t, got, 1.0, name)
	}

	assert.Equal(t, 0.0, e.Stress(cases["flat"]), "all-equal prices are calm")
	assert.Equal(t, 1.0, e.Stress(cases["violent"]), "extreme swings saturate at 1")
}

func TestStress_TooFewSamples(t *testing.T) {
	e := NewEngine(DefaultParams())
	assert.Equal(t, 0.0, e.Stress(nil))
	assert.Equal(t, 0.0, e.Stress(constSeries(1, 100, 1000)))
}

func TestStress_UsesTrailingLookback(t *testing.T) {
	// A violent start followed by StressLookback+1 flat prices must score
	// calm: only trailing returns enter the window.
	prices := []float64{100, 200, 50}
	for i := 0; i < 15; i++ {
		prices = append(prices, 75)
	}
	vols := make([]float64, len(prices))
	e := NewEngine(DefaultParams())

	assert.Equal(t, 0.0, e.Stress(daily(prices, vols)))
}

func TestWeighted_Defaults(t *testing.T) {
	// 0.6*2.0 + 0.3*0.1 + 0.1*0.5
	e := NewEngine(DefaultParams())
	got := e.Weighted(2.0, 0.1, 0.5)
	assert.InDelta(t, 1.28, got, 1e-12)
}

func TestWeighted_NoClamping(t *testing.T) {
	e := NewEngine(Params{Weights: Weights{ETF: 1, Stables: 1, Stress: 1}})
	assert.InDelta(t, 30.0, e.Weighted(10, 10, 10), 1e-12)
	assert.InDelta(t, -30.0, e.Weighted(-10, -10, -10), 1e-12)
}

func TestEngine_Idempotent(t *testing.T) {
	prices := []float64{100, 104, 99, 107, 103, 111, 96}
	vols := []float64{900, 1100, 1000, 1200, 950, 1300, 1800}
	samples := daily(prices, vols)
	caps := []model.StableCapSample{
		{ID: "tether", MarketCapNow: 1000, MarketCapPrior24h: 990},
	}
	e := NewEngine(DefaultParams())

	require.Equal(t, e.MomentumVolume(samples), e.MomentumVolume(samples))
	require.Equal(t, e.Stables(caps), e.Stables(caps))
	require.Equal(t, e.Stress(samples), e.Stress(samples))
	require.Equal(t, e.Weighted(0.2, 0.01, 0.4), e.Weighted(0.2, 0.01, 0.4))
}
