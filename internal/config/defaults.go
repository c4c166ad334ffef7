package config

import (
	"github.com/modu-ai/namelint/internal/convention"
	"github.com/modu-ai/namelint/internal/scanner"
	"github.com/modu-ai/namelint/pkg/models"
)

// File names and default values.
const (
	FileName    = ".namelint.yaml"
	EnvFileName = ".env"

	DefaultMaxExportsPerFile = convention.DefaultMaxExportsPerFile
	DefaultConcurrency       = scanner.DefaultConcurrency
	DefaultFormat            = "text"
	DefaultLogLevel          = "warn"
)

// Environment variables read by the loader.
const (
	EnvAllowPascalFilenames = "NAMELINT_ALLOW_PASCAL_FILENAMES"
	EnvMaxExportsPerFile    = "NAMELINT_MAX_EXPORTS_PER_FILE"
	EnvFormat               = "NAMELINT_FORMAT"
	EnvNoColor              = "NAMELINT_NO_COLOR"
	EnvLogLevel             = "NAMELINT_LOG_LEVEL"
	EnvNoColorStandard      = "NO_COLOR"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Rules:  NewDefaultRulesConfig(),
		Scan:   NewDefaultScanConfig(),
		Output: NewDefaultOutputConfig(),
	}
}

// NewDefaultRulesConfig returns the default rules section.
func NewDefaultRulesConfig() RulesConfig {
	return RulesConfig{
		AllowPascalFilenames: false,
		MaxExportsPerFile:    DefaultMaxExportsPerFile,
		Disabled:             []models.RuleID{},
	}
}

// NewDefaultScanConfig returns the default scan section.
func NewDefaultScanConfig() ScanConfig {
	return ScanConfig{
		Extensions:  scanner.DefaultExtensions(),
		Ignore:      []string{},
		Concurrency: DefaultConcurrency,
	}
}

// NewDefaultOutputConfig returns the default output section.
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format:   DefaultFormat,
		NoColor:  false,
		LogLevel: DefaultLogLevel,
	}
}
