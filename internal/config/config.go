// =============================================================================
// XML to BOM Generator - Configuration Module
// =============================================================================
//
// This module is responsible for loading the optional YAML configuration
// file. Every setting has a default, so the tool runs without any file:
//
//   bomgen input.xml output.xlsx
//
// CONFIGURATION FILE (all keys optional):
//   fields:
//     manufacturer: Manufacturer
//     part_number: Manufacturer Part Number
//   generic:
//     manufacturer: Generic
//     validator_prefixes: [R, C, D]
//     validator_exact: [J]
//     grouper_prefixes: [R, C, D, J]
//   output:
//     sheet_name: Sheet
//     summary_dir: ""
//   logging:
//     level: info
//     log_file: ""
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// Fields names the component fields that carry identification.
	Fields FieldNames `yaml:"fields"`

	// Generic controls which designators may fall back to a generic part.
	Generic GenericConfig `yaml:"generic"`

	// Output controls the written workbook and the run summary.
	Output OutputConfig `yaml:"output"`

	// Logging controls diagnostic verbosity and the optional log file.
	Logging LoggingConfig `yaml:"logging"`
}

// FieldNames holds the exact (case-sensitive) field names to look up.
type FieldNames struct {
	// Manufacturer is the name of the manufacturer field.
	// Default: "Manufacturer"
	Manufacturer string `yaml:"manufacturer"`

	// PartNumber is the name of the manufacturer part number field.
	// Default: "Manufacturer Part Number"
	PartNumber string `yaml:"part_number"`
}

// GenericConfig holds the generic-part inference rules.
//
// The validator and the grouper use separate rule sets. With the defaults a
// designator of exactly "J" is generic for the validator, while any designator
// starting with "J" is generic for the grouper.
type GenericConfig struct {
	// Manufacturer is the manufacturer name given to inferred generic parts.
	// Default: "Generic"
	Manufacturer string `yaml:"manufacturer"`

	// ValidatorPrefixes are first characters accepted as generic by the validator.
	// Default: [R, C, D]
	ValidatorPrefixes []string `yaml:"validator_prefixes"`

	// ValidatorExact are whole designators accepted as generic by the validator.
	// Default: [J]
	ValidatorExact []string `yaml:"validator_exact"`

	// GrouperPrefixes are first characters accepted as generic by the grouper.
	// Default: [R, C, D, J]
	GrouperPrefixes []string `yaml:"grouper_prefixes"`
}

// OutputConfig holds workbook output settings.
type OutputConfig struct {
	// SheetName is the name of the single worksheet.
	// Default: "Sheet"
	SheetName string `yaml:"sheet_name"`

	// SummaryDir, when set, receives a plain-text run summary per run.
	SummaryDir string `yaml:"summary_dir"`
}

// LoggingConfig holds diagnostic logging settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// LogFile, when set, mirrors every diagnostic as JSON to this file.
	LogFile string `yaml:"log_file"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Load loads the configuration from a YAML file.
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Fields.Manufacturer == "" {
		cfg.Fields.Manufacturer = "Manufacturer"
	}
	if cfg.Fields.PartNumber == "" {
		cfg.Fields.PartNumber = "Manufacturer Part Number"
	}
	if cfg.Generic.Manufacturer == "" {
		cfg.Generic.Manufacturer = "Generic"
	}
	if cfg.Generic.ValidatorPrefixes == nil {
		cfg.Generic.ValidatorPrefixes = []string{"R", "C", "D"}
	}
	if cfg.Generic.ValidatorExact == nil {
		cfg.Generic.ValidatorExact = []string{"J"}
	}
	if cfg.Generic.GrouperPrefixes == nil {
		cfg.Generic.GrouperPrefixes = []string{"R", "C", "D", "J"}
	}
	if cfg.Output.SheetName == "" {
		cfg.Output.SheetName = "Sheet"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// validate checks the configuration after defaults are applied.
func validate(cfg *Config) error {
	// Excel limits sheet names to 31 characters and forbids a few symbols.
	if len([]rune(cfg.Output.SheetName)) > 31 {
		return fmt.Errorf("output.sheet_name %q exceeds 31 characters", cfg.Output.SheetName)
	}
	if strings.ContainsAny(cfg.Output.SheetName, `:\/?*[]`) {
		return fmt.Errorf("output.sheet_name %q contains a forbidden character", cfg.Output.SheetName)
	}

	for _, p := range append(append([]string{}, cfg.Generic.ValidatorPrefixes...), cfg.Generic.GrouperPrefixes...) {
		if len([]rune(p)) != 1 {
			return fmt.Errorf("generic prefix %q must be a single character", p)
		}
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	return nil
}
