package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_ENCODING", "")
	t.Setenv("CATALOG_SEED", "")
	t.Setenv("PRICE_DISPLAY_PLACES", "")
	c := Load()
	if c.AppEnv != "dev" {
		t.Fatalf("AppEnv default")
	}
	if c.LogLevel != "warn" || c.LogEncoding != "console" {
		t.Fatalf("logger defaults: %+v", c)
	}
	if c.Seed != SeedDefault {
		t.Fatalf("Seed default")
	}
	if c.PricePlaces != -1 {
		t.Fatalf("PricePlaces default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_ENCODING", "json")
	t.Setenv("CATALOG_SEED", "EMPTY")
	t.Setenv("PRICE_DISPLAY_PLACES", "2")
	c := Load()
	if c.AppEnv != "production" {
		t.Fatalf("AppEnv env")
	}
	if c.LogLevel != "debug" || c.LogEncoding != "json" {
		t.Fatalf("logger env: %+v", c)
	}
	if c.Seed != SeedEmpty {
		t.Fatalf("Seed env")
	}
	if c.PricePlaces != 2 {
		t.Fatalf("PricePlaces env")
	}
}

func TestLoadUnknownSeedFallsBack(t *testing.T) {
	t.Setenv("CATALOG_SEED", "warehouse")
	t.Setenv("PRICE_DISPLAY_PLACES", "two")
	c := Load()
	if c.Seed != SeedDefault {
		t.Fatalf("expected default seed, got %q", c.Seed)
	}
	if c.PricePlaces != -1 {
		t.Fatalf("expected fallback places, got %d", c.PricePlaces)
	}
}

func TestLoadWithDotenv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	// godotenv does not override variables already present, so make sure the
	// key is absent rather than empty.
	_ = os.Unsetenv("LOG_LEVEL")
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	if err := os.WriteFile(p, []byte("LOG_LEVEL=error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadWithDotenv(filepath.Join(dir, "missing.env"), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.LogLevel != "error" {
		t.Fatalf("expected level from dotenv, got %q", c.LogLevel)
	}
}

func TestLoadWithDotenvMalformedFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	_ = os.Unsetenv("LOG_LEVEL")
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.env")
	if err := os.WriteFile(bad, []byte("APP_ENV=\"prod\nLOG_ENCODING=json\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.env")
	if err := os.WriteFile(good, []byte("LOG_LEVEL=error\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadWithDotenv(bad, good)
	if err == nil {
		t.Fatalf("expected an error for %s", bad)
	}
	if !strings.Contains(err.Error(), "bad.env") {
		t.Fatalf("error should name the file, got %v", err)
	}
	if c.LogLevel != "error" {
		t.Fatalf("later files must still load, got level %q", c.LogLevel)
	}
}
