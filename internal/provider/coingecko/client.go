// Package coingecko implements provider.MarketDataSource against the public
// CoinGecko v3 API.
package coingecko

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"btc-signals/internal/model"
)

const (
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	// Free tier allows ~30 req/min; one request every 2s keeps headroom.
	requestInterval = 2 * time.Second

	userAgent = "btc-signals/1.0"
)

// Config for the CoinGecko client.
type Config struct {
	BaseURL string
	APIKey  string        // optional demo key, sent as x-cg-demo-api-key
	Timeout time.Duration // per-request timeout
}

// Client fetches daily market series and stablecoin caps from CoinGecko.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(10 * time.Second)
	if cfg.APIKey != "" {
		hc.SetHeader("x-cg-demo-api-key", cfg.APIKey)
	}
	return &Client{
		http:    hc,
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
	}
}

func (c *Client) Name() string { return "CoinGecko" }

// Close closes idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// FetchDailyMarket fetches the trailing daily price/volume series for one
// asset via /coins/{asset}/market_chart.
func (c *Client) FetchDailyMarket(ctx context.Context, asset string, days int) ([]model.PriceSample, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var out marketChartResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": "usd",
			"days":        strconv.Itoa(days),
			"interval":    "daily",
		}).
		SetResult(&out).
		Get("/coins/" + url.PathEscape(asset) + "/market_chart")
	if err != nil {
		return nil, fmt.Errorf("coingecko market_chart %s: %w", asset, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("coingecko market_chart %s: HTTP %d", asset, resp.StatusCode())
	}

	samples := zipSamples(out.Prices, out.TotalVolumes)
	slog.Debug("fetched market chart", "asset", asset, "days", days, "samples", len(samples))
	return samples, nil
}

// FetchStableCaps fetches current market caps plus their 24h deltas via
// /coins/markets and reconstructs the prior caps.
func (c *Client) FetchStableCaps(ctx context.Context, ids []string) ([]model.StableCapSample, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var rows []coinMarketRow
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": "usd",
			"ids":         strings.Join(ids, ","),
		}).
		SetResult(&rows).
		Get("/coins/markets")
	if err != nil {
		return nil, fmt.Errorf("coingecko coins/markets: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("coingecko coins/markets: HTTP %d", resp.StatusCode())
	}

	caps := make([]model.StableCapSample, 0, len(rows))
	for _, r := range rows {
		prior := r.MarketCap - r.MarketCapChange24h
		if prior < 0 {
			prior = 0
		}
		caps = append(caps, model.StableCapSample{
			ID:                r.ID,
			MarketCapNow:      r.MarketCap,
			MarketCapPrior24h: prior,
		})
	}
	slog.Debug("fetched stablecoin caps", "requested", len(ids), "returned", len(caps))
	return caps, nil
}

// zipSamples pairs price and volume series by index, tolerating length
// mismatches by zipping to the shorter one, and keeps one sample per UTC day
// (the latest; CoinGecko appends a current-moment point for today).
func zipSamples(prices, volumes [][]float64) []model.PriceSample {
	n := len(prices)
	if len(volumes) < n {
		n = len(volumes)
	}
	samples := make([]model.PriceSample, 0, n)
	for i := 0; i < n; i++ {
		if len(prices[i]) < 2 || len(volumes[i]) < 2 {
			continue
		}
		s := model.PriceSample{
			Timestamp: int64(prices[i][0]),
			Price:     prices[i][1],
			Volume:    volumes[i][1],
		}
		if len(samples) > 0 && sameDay(samples[len(samples)-1], s) {
			samples[len(samples)-1] = s
			continue
		}
		samples = append(samples, s)
	}
	return samples
}

func sameDay(a, b model.PriceSample) bool {
	ta, tb := a.Time(), b.Time()
	return ta.Year() == tb.Year() && ta.YearDay() == tb.YearDay()
}
