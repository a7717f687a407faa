// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Layered configuration (defaults, YAML, .env, environment).

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypernest/traversal"
)

// Sentinel errors.
var (
	// ErrInvalidValue indicates a value that failed parsing or validation.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrRead indicates a configuration file that could not be read or decoded.
	ErrRead = errors.New("config: cannot read file")
)

// Environments accepted in Config.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultEnvFile is the .env file consulted by Load.
const DefaultEnvFile = ".env"

const envPrefix = "HYPERNEST_"

// Search holds the defaults for traversal.FindPaths.
type Search struct {
	Tau            float64 `yaml:"tau"`
	MaxHops        int     `yaml:"max_hops"`
	CollectAll     bool    `yaml:"collect_all"`
	DedupPrecision int     `yaml:"dedup_precision"`
}

// Config holds all command configuration.
type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	Search   Search `yaml:"search"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Env:      EnvDevelopment,
		LogLevel: "debug",
		Search: Search{
			Tau:            traversal.DefaultTau,
			MaxHops:        traversal.DefaultMaxHops,
			CollectAll:     true,
			DedupPrecision: traversal.DefaultDedupPrecision,
		},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is ""),
// envFile (DefaultEnvFile when "") and HYPERNEST_* variables, then validates.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	}

	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	c.Env = getEnv("ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	var err error
	if c.Search.Tau, err = getEnvFloat("TAU", c.Search.Tau); err != nil {
		return err
	}
	if c.Search.MaxHops, err = getEnvInt("MAX_HOPS", c.Search.MaxHops); err != nil {
		return err
	}
	if c.Search.CollectAll, err = getEnvBool("COLLECT_ALL", c.Search.CollectAll); err != nil {
		return err
	}
	if c.Search.DedupPrecision, err = getEnvInt("DEDUP_PRECISION", c.Search.DedupPrecision); err != nil {
		return err
	}

	return nil
}

// Validate checks ranges: tau in (0,1], non-negative hops, precision 0..15
// and a known environment.
func (c *Config) Validate() error {
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return fmt.Errorf("%w: env %q", ErrInvalidValue, c.Env)
	}
	if !(c.Search.Tau > 0 && c.Search.Tau <= 1) {
		return fmt.Errorf("%w: tau %v not in (0,1]", ErrInvalidValue, c.Search.Tau)
	}
	if c.Search.MaxHops < 0 {
		return fmt.Errorf("%w: max_hops %d", ErrInvalidValue, c.Search.MaxHops)
	}
	if c.Search.DedupPrecision < 0 || c.Search.DedupPrecision > 15 {
		return fmt.Errorf("%w: dedup_precision %d", ErrInvalidValue, c.Search.DedupPrecision)
	}

	return nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool { return c.Env == EnvProduction }

// Options converts the search defaults into traversal options.
func (s Search) Options() []traversal.Option {
	return []traversal.Option{
		traversal.WithTau(s.Tau),
		traversal.WithMaxHops(s.MaxHops),
		traversal.WithCollectAll(s.CollectAll),
		traversal.WithDedupPrecision(s.DedupPrecision),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, envPrefix, key, value)
	}
	return f, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, envPrefix, key, value)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, envPrefix, key, value)
	}
	return b, nil
}
