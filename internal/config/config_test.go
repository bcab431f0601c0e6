package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected app env: %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
	}
	if !cfg.RankingCacheEnabled || cfg.RankingCacheTTL != 30*time.Second {
		t.Fatalf("unexpected ranking cache config: enabled=%t ttl=%s", cfg.RankingCacheEnabled, cfg.RankingCacheTTL)
	}
	if cfg.BulkWorkerCount != 4 {
		t.Fatalf("unexpected bulk worker count: %d", cfg.BulkWorkerCount)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("expected swagger enabled outside prod")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadProdDisablesSwaggerByDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]struct {
		key   string
		value string
	}{
		"bad app env":        {"APP_ENV", "qa"},
		"bad storage driver": {"STORAGE_DRIVER", "mysql"},
		"bad worker count":   {"BULK_WORKER_COUNT", "0"},
		"bad cache ttl":      {"RANKING_CACHE_TTL", "-5s"},
		"bad swagger flag":   {"SWAGGER_ENABLED", "maybe"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoadRequiresDSNWhenUptraceEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_DSN is missing")
	}
}

func TestLoadMemoryDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
	}
}
