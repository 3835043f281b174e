// Package config provides runtime configuration values for the simulator.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Seed names accepted by CATALOG_SEED.
const (
	SeedDefault = "default"
	SeedEmpty   = "empty"
)

// Config holds configuration knobs for logging and catalog seeding.
type Config struct {
	AppEnv      string
	LogLevel    string
	LogEncoding string
	Seed        string
	// PricePlaces fixes the number of decimals printed for prices.
	// Negative means shortest form.
	PricePlaces int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from environment with defaults.
func Load() Config {
	seed := strings.ToLower(getenv("CATALOG_SEED", SeedDefault))
	if seed != SeedEmpty {
		seed = SeedDefault
	}
	return Config{
		AppEnv:      getenv("APP_ENV", "dev"),
		LogLevel:    getenv("LOG_LEVEL", "warn"),
		LogEncoding: getenv("LOG_ENCODING", "console"),
		Seed:        seed,
		PricePlaces: atoienv("PRICE_DISPLAY_PLACES", -1),
	}
}

// LoadWithDotenv reads the given .env files (".env" when none) into the
// process environment and then calls Load. Missing files are skipped; a file
// that exists but does not parse is reported, and the remaining files and the
// environment still produce a usable Config.
func LoadWithDotenv(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var firstErr error
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "load %s", f)
		}
	}
	return Load(), firstErr
}
