package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	maxRetriesLimit = 5
	responseSlack   = 5 * time.Second
)

type config struct {
	Addr             string        `toml:"addr"`
	BaseURL          string        `toml:"pokeapi_base_url"`
	Timeout          time.Duration `toml:"pokeapi_timeout"`
	RPS              int           `toml:"pokeapi_rps"`
	MaxRetries       int           `toml:"pokeapi_max_retries"`
	UserAgent        string        `toml:"user_agent"`
	PageSize         int           `toml:"page_size"`
	FetchConcurrency int           `toml:"fetch_concurrency"`
	RateLimitRPS     float64       `toml:"rate_limit_rps"`
	RateLimitBurst   int           `toml:"rate_limit_burst"`
}

func defaultConfig() config {
	return config{
		Addr:           ":8080",
		BaseURL:        "https://pokeapi.co/api/v2",
		Timeout:        10 * time.Second,
		RPS:            20,
		MaxRetries:     0,
		UserAgent:      "pokedex-web/1.0",
		PageSize:       10,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// loadConfig layers defaults, the optional POKEDEX_CONFIG toml file and
// the environment, in that order.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("POKEDEX_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var err error
	cfg.Addr = getEnv("APP_ADDR", cfg.Addr)
	cfg.BaseURL = getEnv("POKEAPI_BASE_URL", cfg.BaseURL)
	cfg.UserAgent = getEnv("USER_AGENT", cfg.UserAgent)
	if cfg.Timeout, err = envDuration("POKEAPI_TIMEOUT", cfg.Timeout); err != nil {
		return config{}, err
	}
	if cfg.RPS, err = envInt("POKEAPI_RPS", cfg.RPS); err != nil {
		return config{}, err
	}
	if cfg.MaxRetries, err = envInt("POKEAPI_MAX_RETRIES", cfg.MaxRetries); err != nil {
		return config{}, err
	}
	if cfg.PageSize, err = envInt("PAGE_SIZE", cfg.PageSize); err != nil {
		return config{}, err
	}
	if cfg.FetchConcurrency, err = envInt("FETCH_CONCURRENCY", cfg.FetchConcurrency); err != nil {
		return config{}, err
	}
	if cfg.RateLimitRPS, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return config{}, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return config{}, err
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("addr must not be empty")
	case c.BaseURL == "":
		return fmt.Errorf("pokeapi base url must not be empty")
	case c.Timeout <= 0:
		return fmt.Errorf("pokeapi timeout must be positive, got %s", c.Timeout)
	case c.RPS <= 0:
		return fmt.Errorf("pokeapi rps must be positive, got %d", c.RPS)
	case c.MaxRetries < 0 || c.MaxRetries > maxRetriesLimit:
		return fmt.Errorf("pokeapi max retries must be within 0..%d, got %d", maxRetriesLimit, c.MaxRetries)
	case c.PageSize <= 0 || c.PageSize > 100:
		return fmt.Errorf("page size must be within 1..100, got %d", c.PageSize)
	case c.FetchConcurrency < 0:
		return fmt.Errorf("fetch concurrency must not be negative, got %d", c.FetchConcurrency)
	case c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0:
		return fmt.Errorf("rate limit must be positive, got rps=%v burst=%d", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// writeTimeout covers the slowest page: the index call followed by
// ceil(page size / concurrency) rounds of detail calls, each call spending
// every attempt up to the client timeout plus the 1s, 2s, 4s... backoff.
// The details page makes two sequential calls, never more than this.
func (c config) writeTimeout() time.Duration {
	concurrency := c.FetchConcurrency
	if concurrency <= 0 || concurrency > c.PageSize {
		concurrency = c.PageSize
	}
	rounds := 1 + (c.PageSize+concurrency-1)/concurrency
	attempts := time.Duration(c.MaxRetries + 1)
	backoff := time.Duration(1<<uint(c.MaxRetries)-1) * time.Second
	perCall := c.Timeout*attempts + backoff
	return time.Duration(rounds)*perCall + responseSlack
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
