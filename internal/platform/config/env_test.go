package config

import "testing"

type envTestConfig struct {
	DBPath string `env:"CONFIG_TEST_DB_PATH" envDefault:"data/test.db"`
	Admin  int64  `env:"CONFIG_TEST_ADMIN_ID"`
}

func TestParseEnvReadsValues(t *testing.T) {
	t.Setenv("CONFIG_TEST_DB_PATH", "/tmp/override.db")
	t.Setenv("CONFIG_TEST_ADMIN_ID", "42")

	cfg := envTestConfig{}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "/tmp/override.db" {
		t.Fatalf("expected env value for db path, got %q", cfg.DBPath)
	}
	if cfg.Admin != 42 {
		t.Fatalf("expected admin id 42, got %d", cfg.Admin)
	}
}

func TestParseEnvAppliesDefaults(t *testing.T) {
	cfg := envTestConfig{}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "data/test.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestParseEnvRejectsMalformedValue(t *testing.T) {
	t.Setenv("CONFIG_TEST_ADMIN_ID", "not-a-number")

	cfg := envTestConfig{}
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected parse error for malformed int")
	}
}
