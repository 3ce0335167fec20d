// Package config resolves runtime configuration from defaults, an optional
// YAML file, and the environment — in that order, later sources winning.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the catalog server.
type Config struct {
	Addr         string  `yaml:"addr"`
	CatalogPath  string  `yaml:"catalog_path"`
	CatalogLog   string  `yaml:"catalog_log"`
	StrictLoad   bool    `yaml:"strict_load"`
	RateLimitRPS float64 `yaml:"rate_limit_rps"`
	MaxBodyBytes int64   `yaml:"max_body_bytes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:         ":8080",
		CatalogPath:  "books.json",
		CatalogLog:   "library.log",
		StrictLoad:   false,
		RateLimitRPS: 10,
		MaxBodyBytes: 1 << 20,
	}
}

// Load resolves the configuration. Dotenv files are read first so their
// values are visible as environment variables; runtime-provided environment
// is never overridden.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := fromYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	fromEnv(&cfg)
	return cfg, nil
}

func fromYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func fromEnv(cfg *Config) {
	if v := os.Getenv("APP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("CATALOG_LOG"); v != "" {
		cfg.CatalogLog = v
	}
	if v := os.Getenv("STRICT_LOAD"); v != "" {
		cfg.StrictLoad = v == "true"
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxBodyBytes = n
		}
	}
}
