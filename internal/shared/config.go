package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	StaticDir       string
	HotelAPIBase    string
	HotelAPIHost    string
	HotelAPIKey     string
	ExchangeBase    string
	UpstreamRPS     int
	UpstreamTimeout time.Duration
}

// Load reads configuration once at startup. A .env file is honored when
// present (local development); real environment variables win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env load failed")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":5500"),
		MetricsAddr:     env("METRICS_ADDR", ""),
		StaticDir:       env("STATIC_DIR", "public"),
		HotelAPIBase:    env("RAPIDAPI_BASE_URL", "https://xotelo-hotel-prices.p.rapidapi.com"),
		HotelAPIHost:    env("RAPIDAPI_HOST", "xotelo-hotel-prices.p.rapidapi.com"),
		HotelAPIKey:     env("RAPIDAPI_KEY", ""),
		ExchangeBase:    env("EXCHANGE_BASE_URL", "https://api.exchangerate-api.com"),
		UpstreamRPS:     atoi("UPSTREAM_RPS", 5),
		UpstreamTimeout: time.Duration(atoi("UPSTREAM_TIMEOUT_SECONDS", 20)) * time.Second,
	}
	if c.HotelAPIKey == "" {
		// Not fatal: /convert-currency and /health work without it, and
		// /search-hotels reports a configuration error per request.
		log.Warn().Msg("RAPIDAPI_KEY is empty; /search-hotels will be unavailable")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
