package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort  string
	LogLevel    string
	HTTPTimeout time.Duration

	Backend struct {
		Origin       string
		ExchangePath string
	}

	Naver struct {
		APIURL       string
		ClientID     string
		ClientSecret string
		Display      int
	}
}

// Load reads configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("server_port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_timeout_seconds", 0)
	v.SetDefault("backend_origin", "http://localhost:7070")
	v.SetDefault("naver_api_url", "https://openapi.naver.com")
	v.SetDefault("naver_search_display", 15)
	v.AutomaticEnv()

	cfg := &Config{
		ServerPort: v.GetString("server_port"),
		LogLevel:   v.GetString("log_level"),
	}

	timeoutSeconds := v.GetInt("http_timeout_seconds")
	if timeoutSeconds < 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must not be negative")
	}
	cfg.HTTPTimeout = time.Duration(timeoutSeconds) * time.Second

	cfg.Backend.Origin = v.GetString("backend_origin")
	if cfg.Backend.Origin == "" {
		return nil, fmt.Errorf("BACKEND_ORIGIN must be set")
	}
	// An explicitly empty BACKEND_EXCHANGE_PATH disables the authorized list call.
	exchange := viper.New()
	exchange.SetDefault("backend_exchange_path", "/api/server/exchange-call")
	exchange.AllowEmptyEnv(true)
	exchange.AutomaticEnv()
	cfg.Backend.ExchangePath = exchange.GetString("backend_exchange_path")

	cfg.Naver.APIURL = v.GetString("naver_api_url")
	cfg.Naver.Display = v.GetInt("naver_search_display")
	if cfg.Naver.Display <= 0 {
		return nil, fmt.Errorf("NAVER_SEARCH_DISPLAY must be positive")
	}

	cfg.Naver.ClientID = v.GetString("naver_client_id")
	if cfg.Naver.ClientID == "" {
		return nil, fmt.Errorf("NAVER_CLIENT_ID must be set")
	}

	cfg.Naver.ClientSecret = v.GetString("naver_client_secret")
	if cfg.Naver.ClientSecret == "" {
		return nil, fmt.Errorf("NAVER_CLIENT_SECRET must be set")
	}

	return cfg, nil
}
