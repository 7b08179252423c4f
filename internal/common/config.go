package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Storage     StorageConfig    `toml:"storage"`
	Processing  ProcessingConfig `toml:"processing"`
	Logging     LoggingConfig    `toml:"logging"`
	Classifier  ClassifierConfig `toml:"classifier"`
	Synthesis   SynthesisConfig  `toml:"synthesis"`
	WebSocket   WebSocketConfig  `toml:"websocket"`
}

type ServerConfig struct {
	Port            int    `toml:"port"`
	Host            string `toml:"host"`
	IngestRateLimit string `toml:"ingest_rate_limit"` // min interval between ingest requests, e.g. "100ms"
	IngestBurst     int    `toml:"ingest_burst"`      // burst size for the ingest rate limiter
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	InMemory       bool   `toml:"in_memory"`        // Run without disk persistence (tests)
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean runs
}

// ProcessingConfig controls classification fan-out within one ingestion batch
type ProcessingConfig struct {
	Concurrency int `toml:"concurrency"` // Max units classified in parallel per batch
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// ClassifierConfig allows overriding the built-in rule tables
type ClassifierConfig struct {
	RulesFile string `toml:"rules_file"` // Optional YAML rules file; empty = built-in defaults
}

// SynthesisConfig controls the background re-synthesis scheduler
type SynthesisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // Cron schedule format
}

// WebSocketConfig contains configuration for WebSocket event streaming
type WebSocketConfig struct {
	AllowedEvents    []string `toml:"allowed_events"`    // Whitelist of event types to broadcast. Empty = all.
	ThrottleInterval string   `toml:"throttle_interval"` // Min interval between source_ingested broadcasts, e.g. "500ms"
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:            8090,
			Host:            "localhost",
			IngestRateLimit: "50ms",
			IngestBurst:     10,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Processing: ProcessingConfig{
			Concurrency: 8, // Classification is stateless; bounded only by compute
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout", "file"},
		},
		Classifier: ClassifierConfig{
			RulesFile: "", // Built-in rule tables unless overridden
		},
		Synthesis: SynthesisConfig{
			Enabled:  false,           // Background refresh is opt-in
			Schedule: "0 */5 * * * *", // Every 5 minutes (cron format with seconds)
		},
		WebSocket: WebSocketConfig{
			AllowedEvents:    []string{},
			ThrottleInterval: "500ms",
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files; later files override
// earlier ones, environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PRISM_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("PRISM_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("PRISM_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if badgerPath := os.Getenv("PRISM_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	if concurrency := os.Getenv("PRISM_PROCESSING_CONCURRENCY"); concurrency != "" {
		if c, err := strconv.Atoi(concurrency); err == nil && c > 0 {
			config.Processing.Concurrency = c
		}
	}

	if level := os.Getenv("PRISM_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("PRISM_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if rulesFile := os.Getenv("PRISM_CLASSIFIER_RULES"); rulesFile != "" {
		config.Classifier.RulesFile = rulesFile
	}

	if schedule := os.Getenv("PRISM_SYNTHESIS_SCHEDULE"); schedule != "" {
		config.Synthesis.Schedule = schedule
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
