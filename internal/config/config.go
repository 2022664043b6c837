// Package config manages the godid broadcaster's configuration using
// koanf/v2.
//
// Supports YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/openflightid/godid/internal/odid"
)

// -------------------------------------------------------------------------
// Configuration Structures
// -------------------------------------------------------------------------

// Config holds the complete godid broadcaster configuration.
type Config struct {
	Metrics   MetricsConfig   `koanf:"metrics"`
	Log       LogConfig       `koanf:"log"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Fleet     FleetConfig     `koanf:"fleet"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the HTTP listen address for the metrics endpoint (e.g., ":9100").
	Addr string `koanf:"addr"`
	// Path is the URL path for the metrics endpoint (e.g., "/metrics").
	Path string `koanf:"path"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `koanf:"level"`
	// Format is the log output format: "json" or "text".
	Format string `koanf:"format"`
}

// SchedulerConfig holds the broadcast scheduler's cadence settings.
type SchedulerConfig struct {
	// TickInterval is how often the scheduler advances the ring (e.g., "100ms").
	// Must stay strictly below BCMinStaticRefreshRate/ringSize (spec.md §4.5);
	// Load rejects a non-conforming value rather than silently clamping it.
	TickInterval time.Duration `koanf:"tick_interval"`

	// Ring selects the ring layout: "8", "10", or "default" (the
	// 2·(4+MaxAuthPages) variant).
	Ring string `koanf:"ring"`
}

// Sequence resolves the Ring name to its non-Location message sequence.
func (sc SchedulerConfig) Sequence() ([]odid.MessageType, error) {
	switch sc.Ring {
	case "", "default":
		return odid.DefaultSequence, nil
	case "8":
		return odid.Sequence8, nil
	case "10":
		return odid.Sequence10, nil
	default:
		return nil, fmt.Errorf("scheduler.ring %q: %w", sc.Ring, ErrInvalidRingName)
	}
}

// FleetConfig holds the aircraft tracker's expiry settings.
type FleetConfig struct {
	// TTL is how long an aircraft is tracked without a fresh ingest
	// before it expires from the fleet.
	TTL time.Duration `koanf:"ttl"`

	// CleanupInterval is how often expired entries are swept.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// -------------------------------------------------------------------------
// Defaults
// -------------------------------------------------------------------------

// DefaultConfig returns a Config populated with sensible defaults. The
// default tick interval (100ms) comfortably clears the refresh floor for
// every ring variant (the tightest, 18 slots, requires < 166ms).
func DefaultConfig() *Config {
	return &Config{
		Metrics: MetricsConfig{
			Addr: ":9100",
			Path: "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Scheduler: SchedulerConfig{
			TickInterval: 100 * time.Millisecond,
			Ring:         "default",
		},
		Fleet: FleetConfig{
			TTL:             60 * time.Second,
			CleanupInterval: 30 * time.Second,
		},
	}
}

// Sample renders DefaultConfig() as a YAML document suitable for seeding
// a new deployment's config file.
func Sample() (string, error) {
	defaults := DefaultConfig()
	doc := map[string]any{
		"metrics": map[string]any{
			"addr": defaults.Metrics.Addr,
			"path": defaults.Metrics.Path,
		},
		"log": map[string]any{
			"level":  defaults.Log.Level,
			"format": defaults.Log.Format,
		},
		"scheduler": map[string]any{
			"tick_interval": defaults.Scheduler.TickInterval.String(),
			"ring":          defaults.Scheduler.Ring,
		},
		"fleet": map[string]any{
			"ttl":              defaults.Fleet.TTL.String(),
			"cleanup_interval": defaults.Fleet.CleanupInterval.String(),
		},
	}

	out, err := yamlv3.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal sample config: %w", err)
	}
	return string(out), nil
}

// -------------------------------------------------------------------------
// Loader
// -------------------------------------------------------------------------

// envPrefix is the environment variable prefix for godid configuration.
// Variables are named GODID_<section>_<key>, e.g., GODID_METRICS_ADDR.
const envPrefix = "GODID_"

// Load reads configuration from a YAML file at path, overlays environment
// variable overrides (GODID_ prefix), and merges on top of DefaultConfig().
// Missing fields inherit defaults.
//
// Environment variable mapping:
//
//	GODID_METRICS_ADDR          -> metrics.addr
//	GODID_METRICS_PATH          -> metrics.path
//	GODID_LOG_LEVEL             -> log.level
//	GODID_LOG_FORMAT            -> log.format
//	GODID_SCHEDULER_TICK_INTERVAL -> scheduler.tick_interval
//	GODID_SCHEDULER_RING        -> scheduler.ring
//	GODID_FLEET_TTL             -> fleet.ttl
//
// Uses koanf/v2 with file + env providers and YAML parser.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config from %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

// envKeyMapper transforms GODID_SCHEDULER_TICK_INTERVAL -> scheduler.tick_interval.
// Strips the GODID_ prefix, lowercases, and replaces the first _ (the
// section separator) with . so multi-word keys keep their underscores.
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.Replace(s, "_", ".", 1)
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"metrics.addr":            defaults.Metrics.Addr,
		"metrics.path":            defaults.Metrics.Path,
		"log.level":               defaults.Log.Level,
		"log.format":              defaults.Log.Format,
		"scheduler.tick_interval": defaults.Scheduler.TickInterval.String(),
		"scheduler.ring":          defaults.Scheduler.Ring,
		"fleet.ttl":               defaults.Fleet.TTL.String(),
		"fleet.cleanup_interval":  defaults.Fleet.CleanupInterval.String(),
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Validation
// -------------------------------------------------------------------------

// Validation errors.
var (
	// ErrEmptyMetricsAddr indicates the metrics listen address is empty.
	ErrEmptyMetricsAddr = errors.New("metrics.addr must not be empty")

	// ErrInvalidRingName indicates scheduler.ring is not a recognized name.
	ErrInvalidRingName = errors.New("scheduler.ring must be \"default\", \"8\", or \"10\"")

	// ErrInvalidTickInterval indicates the tick interval does not clear
	// the refresh-rate floor for the selected ring.
	ErrInvalidTickInterval = errors.New("scheduler.tick_interval too slow for the selected ring")

	// ErrInvalidFleetTTL indicates the fleet TTL is non-positive.
	ErrInvalidFleetTTL = errors.New("fleet.ttl must be > 0")
)

// Validate checks the configuration for logical errors. Returns the first
// validation error encountered.
func Validate(cfg *Config) error {
	if cfg.Metrics.Addr == "" {
		return ErrEmptyMetricsAddr
	}

	sequence, err := cfg.Scheduler.Sequence()
	if err != nil {
		return err
	}
	ring := odid.BuildRing(sequence)
	if err := odid.ValidateTickInterval(len(ring), cfg.Scheduler.TickInterval); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTickInterval, err)
	}

	if cfg.Fleet.TTL <= 0 {
		return ErrInvalidFleetTTL
	}

	return nil
}

// -------------------------------------------------------------------------
// Log Level Parsing
// -------------------------------------------------------------------------

// ParseLogLevel maps a configuration log level string to the corresponding
// slog.Level. Unknown values default to slog.LevelInfo.
//
// Recognized values: "debug", "info", "warn", "error" (case-insensitive).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
