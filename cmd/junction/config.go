package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/junction/partition"
)

// envPrefix namespaces every environment variable, e.g. JUNCTION_WORKERS.
const envPrefix = "JUNCTION"

// Config validation errors
var (
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidWorkers   = errors.New("workers must not be negative")
	ErrInvalidStrategy  = errors.New("strategy must be 'scan' or 'indexed'")
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`
	Workers     int    `envconfig:"WORKERS" default:"0"` // 0 means runtime.NumCPU()
	Strategy    string `envconfig:"STRATEGY" default:"scan"`
	MetricsFile string `envconfig:"METRICS_FILE"` // empty disables the textfile
}

// LoadConfig loads envFile if it exists, then processes JUNCTION_* variables.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if _, err := logLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return ErrInvalidWorkers
	}
	if _, err := partition.ParseStrategy(cfg.Strategy); err != nil {
		return ErrInvalidStrategy
	}
	return nil
}

// EffectiveWorkers resolves the 0 default to the CPU count.
func (c Config) EffectiveWorkers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func logLevel(s string) (zerolog.Level, error) {
	switch s {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, ErrInvalidLogLevel
	}
}

// NewLogger builds the process logger. Logs go to stderr so stdout carries
// only query results.
func NewLogger(cfg Config) zerolog.Logger {
	level, err := logLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return logger.With().Timestamp().Str("component", "junction").Logger().Level(level)
}
