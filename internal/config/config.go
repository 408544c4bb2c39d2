package config

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	DatabaseURL         string
	RedisURL            string
	QuoteAPIURL         string // base URL of the quote provider, e.g. https://cloud.iexapis.com/stable
	QuoteAPIKey         string
	QuoteTimeout        time.Duration
	QuoteCacheTTL       time.Duration // 0 disables the Redis quote cache
	StartingCash        decimal.Decimal
	FrontendURLEndsWith string
}

const defaultStartingCash = "10000"

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	startingCash, err := decimal.NewFromString(stringOr(viper.GetString("STARTING_CASH"), defaultStartingCash))
	if err != nil {
		return nil, err
	}

	quoteTimeout := viper.GetInt("QUOTE_TIMEOUT_MS")
	if quoteTimeout <= 0 {
		quoteTimeout = 5000
	}
	cacheTTL := viper.GetInt("QUOTE_CACHE_TTL_MS")
	if cacheTTL < 0 {
		cacheTTL = 0
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		DatabaseURL:         viper.GetString("DATABASE_URL"),
		RedisURL:            viper.GetString("REDIS_URL"),
		QuoteAPIURL:         viper.GetString("QUOTE_API_URL"),
		QuoteAPIKey:         viper.GetString("QUOTE_API_KEY"),
		QuoteTimeout:        time.Duration(quoteTimeout) * time.Millisecond,
		QuoteCacheTTL:       time.Duration(cacheTTL) * time.Millisecond,
		StartingCash:        startingCash,
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
	}, nil
}

func stringOr(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
