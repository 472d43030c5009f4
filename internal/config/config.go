// Package config loads the ringselect command configuration.
//
// Configuration is read from an optional YAML file, completed with defaults,
// overridden by RINGSELECT_* environment variables and validated:
//
//	logging:
//	  level: debug        # debug, info, warn, error
//	  format: text        # text, json
//	metrics:
//	  enabled: true
//	  namespace: ringselect
//	  subsystem: selection
//	  textfile: ./ringselect.prom
//	batch:
//	  workers: 4          # 0 = GOMAXPROCS
//	output:
//	  format: json        # json, yaml
//	preview:
//	  enabled: false
//	  size: 512
//	  dir: ./previews
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMetricsNamespace = "ringselect"
	DefaultMetricsSubsystem = "selection"
	DefaultOutputFormat     = "json"
	DefaultPreviewSize      = 512
	DefaultPreviewDir       = "."
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete ringselect configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Batch   BatchConfig   `yaml:"batch"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`
	// Textfile is where metrics are written after a run. Empty disables it.
	Textfile string `yaml:"textfile"`
}

// BatchConfig configures the worker pool.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures the report format.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// PreviewConfig configures PNG previews of the selection.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Size    int    `yaml:"size"`
	Dir     string `yaml:"dir"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads the YAML file at path, applies defaults, environment overrides
// and validates the result. An empty path loads the defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills zero fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Preview.Size == 0 {
		cfg.Preview.Size = DefaultPreviewSize
	}
	if cfg.Preview.Dir == "" {
		cfg.Preview.Dir = DefaultPreviewDir
	}
}

// applyEnvOverrides applies RINGSELECT_SECTION_FIELD variables. Values that
// fail to parse are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("RINGSELECT_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("RINGSELECT_LOG_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("RINGSELECT_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("RINGSELECT_METRICS_TEXTFILE"); val != "" {
		cfg.Metrics.Textfile = val
	}
	if val := os.Getenv("RINGSELECT_BATCH_WORKERS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Batch.Workers = n
		}
	}
	if val := os.Getenv("RINGSELECT_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("RINGSELECT_PREVIEW_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Preview.Enabled = b
		}
	}
	if val := os.Getenv("RINGSELECT_PREVIEW_DIR"); val != "" {
		cfg.Preview.Dir = val
	}
}

// Validate checks the configuration. Errors wrap ErrInvalidConfig.
func Validate(cfg *Config) error {
	var errs []error

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q must be one of debug, info, warn, error", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be text or json", cfg.Logging.Format))
	}
	switch cfg.Output.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output.format %q must be json or yaml", cfg.Output.Format))
	}
	if cfg.Batch.Workers < 0 {
		errs = append(errs, fmt.Errorf("batch.workers must not be negative, got %d", cfg.Batch.Workers))
	}
	if cfg.Preview.Enabled && (cfg.Preview.Size < 16 || cfg.Preview.Size > 8192) {
		errs = append(errs, fmt.Errorf("preview.size must be within [16, 8192], got %d", cfg.Preview.Size))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
