package config

import (
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Platforms: map[string]PlatformConfig{"espn": {BaseURL: "http://x"}}}
	cfg.ApplyDefaults()

	if cfg.Server.Port != 8080 || cfg.Database.Driver != "postgres" || cfg.Redis.Stream != DefaultRedisStream {
		t.Fatalf("server/db/redis defaults = %+v %+v %+v", cfg.Server, cfg.Database, cfg.Redis)
	}
	if cfg.Sync.IntervalMinutes != DefaultIntervalMinutes || cfg.Sync.Retention() != 24*time.Hour || cfg.Sync.CycleTimeout() != time.Minute {
		t.Fatalf("sync defaults = %+v", cfg.Sync)
	}
	if cfg.Platforms["espn"].Timeout != DefaultRequestTimeout {
		t.Fatalf("platform timeout = %d", cfg.Platforms["espn"].Timeout)
	}
	if len(cfg.Institution.Aliases) != len(DefaultAliases) {
		t.Fatalf("aliases = %v", cfg.Institution.Aliases)
	}

	// defaults never alias the package-level slice
	cfg.Institution.Aliases[0] = "changed"
	if DefaultAliases[0] == "changed" {
		t.Fatal("DefaultAliases mutated through the config")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Sync:        SyncConfig{IntervalMinutes: 15, RetentionHours: 48},
		Institution: InstitutionConfig{Aliases: []string{"SDSU"}, Timezone: "America/New_York"},
	}
	cfg.ApplyDefaults()

	if cfg.Sync.IntervalMinutes != 15 || cfg.Sync.Retention() != 48*time.Hour {
		t.Fatalf("sync = %+v", cfg.Sync)
	}
	if len(cfg.Institution.Aliases) != 1 || cfg.Institution.Location().String() != "America/New_York" {
		t.Fatalf("institution = %+v", cfg.Institution)
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	if loc := (InstitutionConfig{Timezone: "Mars/Olympus_Mons"}).Location(); loc != time.UTC {
		t.Fatalf("location = %v, want UTC", loc)
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("NCAA_PROXY", "http://proxy:3128")

	cfg := &Config{Platforms: map[string]PlatformConfig{"ncaa": {BaseURL: "http://ncaa"}}}
	overrideFromEnv(cfg)

	if cfg.Database.DSN != "postgres://env/db" || cfg.Redis.Addr != "redis:6380" {
		t.Fatalf("env overrides = %+v %+v", cfg.Database, cfg.Redis)
	}
	if p := cfg.Platforms["ncaa"]; p.Proxy != "http://proxy:3128" || p.BaseURL != "http://ncaa" {
		t.Fatalf("ncaa platform = %+v", p)
	}
}
