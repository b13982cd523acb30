// Package config provides YAML configuration for batch sanitization runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"astrosan/internal/formatter"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInput        = errors.New("batch.input is required")
	ErrMissingOutputPath   = errors.New("batch.output.path is required")
	ErrInvalidOutputFormat = errors.New("batch.output.format must be 'json' or 'jsonl'")
	ErrInvalidTargetFormat = errors.New("sanitizer.output_format must be one of: aladin, decimal, hms-dms")
	ErrInvalidPrecision    = errors.New("sanitizer.precision must be non-negative")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
)

// Config is the complete batch configuration.
type Config struct {
	Batch     BatchConfig     `yaml:"batch"`
	Sanitizer SanitizerConfig `yaml:"sanitizer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// BatchConfig describes the input list and output targets.
type BatchConfig struct {
	// Input is the path to a text file with one coordinate or object name
	// per line. Blank lines and lines starting with # are skipped.
	Input           string       `yaml:"input" validate:"required"`
	Output          OutputConfig `yaml:"output"`
	ContinueOnError bool         `yaml:"continue_on_error"`
}

// OutputConfig describes where and how results are written.
type OutputConfig struct {
	Path         string `yaml:"path" validate:"required"`
	Format       string `yaml:"format" validate:"omitempty,oneof=json jsonl"`
	PrettyPrint  bool   `yaml:"pretty_print"`
	CreateBackup bool   `yaml:"create_backup"`
	// Report is an optional path for the signed markdown summary.
	Report string `yaml:"report"`
}

// SanitizerConfig mirrors the sanitizer options in YAML form. Nil pointers
// take the library defaults.
type SanitizerConfig struct {
	OutputFormat   string `yaml:"output_format"`
	Precision      *int   `yaml:"precision"`
	ValidateRanges *bool  `yaml:"validate_ranges"`
	StrictMode     bool   `yaml:"strict_mode"`
}

// LoggingConfig defines logging behavior for the run.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

var structValidator = validator.New()

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes the configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Batch.Output.Format == "" {
		c.Batch.Output.Format = "jsonl"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks the configuration. Struct-tag rules run first; cross-field
// and domain rules follow with sentinel errors.
func (c *Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return translateStructError(err)
	}

	if c.Sanitizer.OutputFormat != "" && !formatter.IsSupported(c.Sanitizer.OutputFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidTargetFormat, c.Sanitizer.OutputFormat)
	}

	if c.Sanitizer.Precision != nil && *c.Sanitizer.Precision < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPrecision, *c.Sanitizer.Precision)
	}

	return nil
}

// translateStructError maps validator tag failures onto the sentinel errors
// callers branch on.
func translateStructError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		switch fe.StructNamespace() {
		case "Config.Batch.Input":
			return ErrMissingInput
		case "Config.Batch.Output.Path":
			return ErrMissingOutputPath
		case "Config.Batch.Output.Format":
			return ErrInvalidOutputFormat
		case "Config.Logging.Level":
			return ErrInvalidLogLevel
		case "Config.Logging.Format":
			return ErrInvalidLogFormat
		}
	}

	return err
}
