package config

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Seed            bool
}

type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// DisplayConfig controls how the view model renders amounts.
type DisplayConfig struct {
	CurrencySymbol string
	AmountFormat   string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
	Display     DisplayConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			Seed:            v.GetBool("DB_SEED"),
		},
		Cache: CacheConfig{
			RedisURL: v.GetString("REDIS_URL"),
			TTL:      v.GetDuration("CACHE_TTL"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Display: DisplayConfig{
			CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
			AmountFormat:   v.GetString("AMOUNT_FORMAT"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8000
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 5
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 5
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}
	// An explicit RATE_LIMIT_REQUESTS=0 turns rate limiting off.
	if !v.IsSet("RATE_LIMIT_REQUESTS") {
		cfg.RateLimit.Requests = 60
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = time.Minute
	}
	if cfg.Display.CurrencySymbol == "" {
		cfg.Display.CurrencySymbol = "$"
	}
	if cfg.Display.AmountFormat == "" {
		cfg.Display.AmountFormat = "#.###,"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.RateLimit.Requests < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative")
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	if err := checkAmountFormat(cfg.Display.AmountFormat); err != nil {
		return fmt.Errorf("AMOUNT_FORMAT %q is invalid: %w", cfg.Display.AmountFormat, err)
	}
	return nil
}

// checkAmountFormat reports the panic humanize raises for a malformed
// format directive.
func checkAmountFormat(format string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	humanize.FormatInteger(format, 1234567)
	return nil
}
