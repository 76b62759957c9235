package config

import "testing"

func validConfig() *Config {
	return &Config{
		CacheCapacity:      1000,
		RequestTimeout:     1,
		BatchConcurrency:   5,
		BreakerMaxFailures: 5,
		HTTPPort:           8090,
		ProviderOrder:      "libretranslate,mymemory,offline",
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cache capacity", func(c *Config) { c.CacheCapacity = 0 }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"zero concurrency", func(c *Config) { c.BatchConcurrency = 0 }},
		{"empty provider order", func(c *Config) { c.ProviderOrder = " , " }},
		{"unknown provider", func(c *Config) { c.ProviderOrder = "libretranslate,bing" }},
		{"bad port", func(c *Config) { c.HTTPPort = 0 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestProviderOrderList(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.ProviderOrder = " Offline , libretranslate ,, offline "
	got := cfg.ProviderOrderList()
	if len(got) != 2 || got[0] != "offline" || got[1] != "libretranslate" {
		t.Fatalf("unexpected provider order: %v", got)
	}
}
