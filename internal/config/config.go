package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"qa-insights-go/internal/types"
)

// Config holds all configuration for the QA insights service.
type Config struct {
	Server      ServerConfig
	Campaign    types.Campaign
	DatasetPath string
	LLM         LLMConfig
	Cache       CacheConfig
}

type ServerConfig struct {
	Port        string
	Environment string
	LogLevel    string
}

type LLMConfig struct {
	GatewayURL   string
	APIKey       string
	Model        string
	UseMock      bool
	HTTPTimeout  time.Duration
	MaxRetryTime time.Duration
}

type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// Load reads configuration from the environment, seeding it from .env when
// present, and returns a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        envString("PORT", "8080"),
			Environment: envString("ENVIRONMENT", "local"),
			LogLevel:    envString("LOG_LEVEL", "info"),
		},
		Campaign:    types.Campaign(envString("CAMPAIGN", string(types.CampaignInternetCable))),
		DatasetPath: os.Getenv("DATASET_PATH"),
		LLM: LLMConfig{
			GatewayURL:   os.Getenv("LLM_GATEWAY_URL"),
			APIKey:       os.Getenv("LLM_API_KEY"),
			Model:        envString("LLM_MODEL", "gemini-2.5-pro"),
			UseMock:      envBool("USE_MOCK_LLM", false),
			HTTPTimeout:  envDuration("LLM_HTTP_TIMEOUT", 25*time.Second),
			MaxRetryTime: envDuration("LLM_MAX_RETRY_TIME", 45*time.Second),
		},
		Cache: CacheConfig{
			RedisURL: os.Getenv("REDIS_URL"),
			TTL:      envDuration("CACHE_TTL", 0),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Campaign.Valid() {
		return fmt.Errorf("CAMPAIGN must be one of internet_cable, banking; got %q", c.Campaign)
	}
	if c.LLM.UseMock {
		return nil
	}
	if c.LLM.GatewayURL == "" {
		return fmt.Errorf("LLM_GATEWAY_URL is required unless USE_MOCK_LLM is true")
	}
	if !strings.HasPrefix(c.LLM.GatewayURL, "http://") && !strings.HasPrefix(c.LLM.GatewayURL, "https://") {
		return fmt.Errorf("LLM_GATEWAY_URL must start with http:// or https://, got %q", c.LLM.GatewayURL)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required unless USE_MOCK_LLM is true")
	}
	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
