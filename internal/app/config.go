package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"btc-signals/internal/provider/coingecko"
	"btc-signals/internal/saver"
	"btc-signals/internal/score"
)

// Config holds application configuration. Precedence: defaults, then the
// optional YAML file named by CONFIG_FILE, then environment variables.
type Config struct {
	Asset           string        `yaml:"asset" validate:"required"`
	Pair            string        `yaml:"pair" validate:"required"`
	StableIDs       []string      `yaml:"stable_ids" validate:"min=1"`
	WindowDays      int           `yaml:"window_days" validate:"gte=2"`
	StressLookback  int           `yaml:"stress_lookback" validate:"gte=1"`
	Weights         score.Weights `yaml:"weights"`
	DataDir         string        `yaml:"data_dir" validate:"required"`
	SaveFormat      string        `yaml:"save_format" validate:"oneof=csv json parquet"`
	BaseURL         string        `yaml:"base_url" validate:"url"`
	APIKey          string        `yaml:"api_key"`
	FetchTimeoutSec int           `yaml:"fetch_timeout_sec" validate:"gte=1"`
	RunEveryHours   int           `yaml:"run_every_hours" validate:"gte=0"`
	LogLevel        string        `yaml:"log_level"` // debug | info | warn | error
}

func defaultConfig() *Config {
	return &Config{
		Asset:           "bitcoin",
		Pair:            "BTC/CHF",
		StableIDs:       []string{"tether", "usd-coin", "dai"},
		WindowDays:      30,
		StressLookback:  14,
		Weights:         score.Weights{ETF: 0.6, Stables: 0.3, Stress: 0.1},
		DataDir:         "data",
		SaveFormat:      defaultSaveFormat(),
		BaseURL:         coingecko.DefaultBaseURL,
		FetchTimeoutSec: 20,
		RunEveryHours:   0,
		LogLevel:        "info",
	}
}

// LoadConfig builds the Config from defaults, optional CONFIG_FILE and env,
// then validates it.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Asset = getEnv("ASSET", c.Asset)
	c.Pair = getEnv("PAIR", c.Pair)
	if v := os.Getenv("STABLE_IDS"); v != "" {
		ids := strings.Split(v, ",")
		for i := range ids {
			ids[i] = strings.TrimSpace(ids[i])
		}
		c.StableIDs = ids
	}
	c.WindowDays = getEnvInt("WINDOW_DAYS", c.WindowDays)
	c.StressLookback = getEnvInt("STRESS_LOOKBACK", c.StressLookback)
	c.Weights.ETF = getEnvFloat("W_ETF", c.Weights.ETF)
	c.Weights.Stables = getEnvFloat("W_STABLES", c.Weights.Stables)
	c.Weights.Stress = getEnvFloat("W_STRESS", c.Weights.Stress)
	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	if v := os.Getenv("SAVE_FORMAT"); v != "" {
		c.SaveFormat = v
	}
	c.BaseURL = getEnv("COINGECKO_BASE_URL", c.BaseURL)
	c.APIKey = getEnv("COINGECKO_API_KEY", c.APIKey)
	c.FetchTimeoutSec = getEnvInt("FETCH_TIMEOUT_SEC", c.FetchTimeoutSec)
	c.RunEveryHours = getEnvInt("RUN_EVERY_HOURS", c.RunEveryHours)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return def
}

func defaultSaveFormat() string {
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "json"
	default:
		return "csv"
	}
}

// FetchTimeout bounds one network fetch; on expiry the whole cycle fails.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

// SnapshotPath returns data/latest.json.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, saver.SnapshotFile)
}

// EngineParams maps the configuration onto score engine parameters. The
// momentum/volume split and the stress normalization bounds are fixed
// constants of the indicator definitions, not tunables.
func (c *Config) EngineParams() score.Params {
	p := score.DefaultParams()
	p.StressLookback = c.StressLookback
	p.Weights = c.Weights
	return p
}
