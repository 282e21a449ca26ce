package config

import (
	"btcrate/internal/adapters/httpclient"
	"btcrate/internal/domain"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ModeServe = "serve"
	ModeOnce  = "once"

	SourceCoinbase = "coinbase"
	SourceFixed    = "fixed"

	defaultConfigPath = "config.yaml"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	// 0 keeps the client without a timeout of its own
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func (c HTTPClient) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type ExchangeRateAPI struct {
	BaseURL   string `mapstructure:"base_url"`
	Base      string `mapstructure:"base"`
	Quote     string `mapstructure:"quote"`
	Source    string `mapstructure:"source"`
	FixedRate string `mapstructure:"fixed_rate"`
}

type Refresh struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

func (r Refresh) Interval() time.Duration {
	return time.Duration(r.IntervalSeconds) * time.Second
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	Mode            string          `mapstructure:"mode"`
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	ExchangeRateAPI ExchangeRateAPI `mapstructure:"exchange_rate_api"`
	Refresh         Refresh         `mapstructure:"refresh"`
	Logging         Logging         `mapstructure:"logging"`
}

// Init reads .env (optional), then the yaml file named by CONFIG_PATH
// (config.yaml by default, optional too), then env overrides.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	return Load(path)
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("mode", ModeServe)
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 0)
	v.SetDefault("exchange_rate_api.base_url", httpclient.DefaultBaseURL)
	v.SetDefault("exchange_rate_api.base", domain.DefaultBase)
	v.SetDefault("exchange_rate_api.quote", domain.DefaultQuote)
	v.SetDefault("exchange_rate_api.source", SourceCoinbase)
	v.SetDefault("exchange_rate_api.fixed_rate", "")
	v.SetDefault("refresh.interval_seconds", 0)
	v.SetDefault("logging.level", "info")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	_ = v.BindEnv("mode", "APP_MODE")

	// http env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// exchange rate api env vars
	_ = v.BindEnv("exchange_rate_api.base_url", "EXCHANGE_RATE_API_BASE_URL")
	_ = v.BindEnv("exchange_rate_api.base", "EXCHANGE_RATE_API_BASE")
	_ = v.BindEnv("exchange_rate_api.quote", "EXCHANGE_RATE_API_QUOTE")
	_ = v.BindEnv("exchange_rate_api.source", "EXCHANGE_RATE_API_SOURCE")
	_ = v.BindEnv("exchange_rate_api.fixed_rate", "EXCHANGE_RATE_API_FIXED_RATE")

	_ = v.BindEnv("refresh.interval_seconds", "REFRESH_INTERVAL_SECONDS")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) normalize() {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.ExchangeRateAPI.Base = strings.ToUpper(strings.TrimSpace(c.ExchangeRateAPI.Base))
	c.ExchangeRateAPI.Quote = strings.ToUpper(strings.TrimSpace(c.ExchangeRateAPI.Quote))
	c.ExchangeRateAPI.Source = strings.ToLower(strings.TrimSpace(c.ExchangeRateAPI.Source))
}

func (c *AppConfig) validate() error {
	if c.Mode != ModeServe && c.Mode != ModeOnce {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.ExchangeRateAPI.Base == "" || c.ExchangeRateAPI.Quote == "" {
		return errors.New("exchange rate api base and quote are required")
	}
	switch c.ExchangeRateAPI.Source {
	case SourceCoinbase:
	case SourceFixed:
		if c.ExchangeRateAPI.FixedRate == "" {
			return errors.New("fixed_rate is required for the fixed source")
		}
	default:
		return fmt.Errorf("unknown exchange rate source %q", c.ExchangeRateAPI.Source)
	}
	if c.Refresh.IntervalSeconds < 0 {
		return errors.New("refresh interval must not be negative")
	}
	return nil
}
