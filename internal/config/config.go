package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the static configuration surface of the translation core.
// It is read once at construction; nothing here is consulted from
// ambient globals afterwards.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	CacheCapacity    int           `envconfig:"TRANSLATION_CACHE_CAPACITY" default:"1000"`
	RequestTimeout   time.Duration `envconfig:"TRANSLATION_REQUEST_TIMEOUT" default:"5s"`
	BatchConcurrency int           `envconfig:"TRANSLATION_BATCH_CONCURRENCY" default:"5"`
	ProviderOrder    string        `envconfig:"TRANSLATION_PROVIDER_ORDER" default:"libretranslate,mymemory,offline"`

	LibreTranslateEndpoint string `envconfig:"LIBRETRANSLATE_ENDPOINT" default:"https://libretranslate.com"`
	LibreTranslateAPIKey   string `envconfig:"LIBRETRANSLATE_API_KEY" default:""`
	MyMemoryEndpoint       string `envconfig:"MYMEMORY_ENDPOINT" default:"https://api.mymemory.translated.net"`
	MyMemoryEmail          string `envconfig:"MYMEMORY_EMAIL" default:""`
	OfflinePhrasesPath     string `envconfig:"OFFLINE_PHRASES_PATH" default:""`

	BreakerMaxFailures  int           `envconfig:"BREAKER_MAX_FAILURES" default:"5"`
	BreakerResetTimeout time.Duration `envconfig:"BREAKER_RESET_TIMEOUT" default:"30s"`

	HTTPHost            string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	HTTPPort            int           `envconfig:"HTTP_PORT" default:"8090"`
	HTTPReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	HTTPWriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s"`
	HTTPShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
	CORSAllowedOrigins  string        `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

var knownProviders = map[string]struct{}{
	"libretranslate": {},
	"mymemory":       {},
	"offline":        {},
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.CacheCapacity < 1 {
		return fmt.Errorf("TRANSLATION_CACHE_CAPACITY must be >= 1")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("TRANSLATION_REQUEST_TIMEOUT must be positive")
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("TRANSLATION_BATCH_CONCURRENCY must be >= 1")
	}
	if c.BreakerMaxFailures < 1 {
		return fmt.Errorf("BREAKER_MAX_FAILURES must be >= 1")
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}

	order := c.ProviderOrderList()
	if len(order) == 0 {
		return fmt.Errorf("TRANSLATION_PROVIDER_ORDER must name at least one provider")
	}
	for _, name := range order {
		if _, ok := knownProviders[name]; !ok {
			return fmt.Errorf("TRANSLATION_PROVIDER_ORDER names unknown provider %q", name)
		}
	}
	return nil
}

// ProviderOrderList splits the comma-separated provider order,
// dropping blanks and duplicates while preserving order.
func (c *Config) ProviderOrderList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.ProviderOrder, ",")
	order := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}
	return order
}

// CORSAllowedOriginsList splits the comma-separated origin allowlist.
func (c *Config) CORSAllowedOriginsList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
