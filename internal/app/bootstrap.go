package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nimblechat/polyglot/internal/config"
	"github.com/nimblechat/polyglot/internal/logging"
	"github.com/nimblechat/polyglot/internal/translation"
)

// bootstrap loads configuration and builds the logger plus the
// orchestrator every command shares.
func bootstrap() (*config.Config, zerolog.Logger, *translation.Orchestrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	orchestrator, err := buildOrchestrator(cfg, logger)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}
	return cfg, logger, orchestrator, nil
}

// buildOrchestrator assembles the provider chain in configured
// priority order. Remote providers are wrapped in circuit breakers;
// the offline dictionary is not, since it cannot fail.
func buildOrchestrator(cfg *config.Config, logger zerolog.Logger) (*translation.Orchestrator, error) {
	breakerSettings := translation.BreakerSettings{
		MaxFailures:  cfg.BreakerMaxFailures,
		ResetTimeout: cfg.BreakerResetTimeout,
	}

	providers := make([]translation.Provider, 0, 3)
	for _, name := range cfg.ProviderOrderList() {
		switch name {
		case "libretranslate":
			providers = append(providers, translation.WithBreaker(
				translation.NewLibreTranslateProvider(cfg.LibreTranslateEndpoint, cfg.LibreTranslateAPIKey, cfg.RequestTimeout),
				breakerSettings,
			))
		case "mymemory":
			providers = append(providers, translation.WithBreaker(
				translation.NewMyMemoryProvider(cfg.MyMemoryEndpoint, cfg.MyMemoryEmail, cfg.RequestTimeout),
				breakerSettings,
			))
		case "offline":
			offline := translation.NewOfflineProvider()
			if cfg.OfflinePhrasesPath != "" {
				if err := offline.LoadPhrases(cfg.OfflinePhrasesPath); err != nil {
					return nil, fmt.Errorf("load offline phrases: %w", err)
				}
			}
			providers = append(providers, offline)
		default:
			return nil, fmt.Errorf("unknown provider %q in provider order", name)
		}
	}

	return translation.NewOrchestrator(providers, logger, translation.Options{
		CacheCapacity:    cfg.CacheCapacity,
		RequestTimeout:   cfg.RequestTimeout,
		BatchConcurrency: cfg.BatchConcurrency,
	}), nil
}
