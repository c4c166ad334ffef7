package config

import (
	"github.com/modu-ai/namelint/internal/convention"
	"github.com/modu-ai/namelint/pkg/models"
)

// Config is the complete namelint configuration, one field per
// .namelint.yaml section.
type Config struct {
	Rules  RulesConfig  `yaml:"rules"`
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
}

// RulesConfig tunes the convention rules.
type RulesConfig struct {
	AllowPascalFilenames bool            `yaml:"allow_pascal_filenames"`
	MaxExportsPerFile    int             `yaml:"max_exports_per_file" validate:"min=1"`
	Disabled             []models.RuleID `yaml:"disabled"`
}

// ScanConfig controls which files the scanner visits.
type ScanConfig struct {
	Extensions  []string `yaml:"extensions" validate:"dive,required"`
	Ignore      []string `yaml:"ignore"`
	Concurrency int      `yaml:"concurrency" validate:"min=1,max=64"`
}

// OutputConfig controls report rendering and logging.
type OutputConfig struct {
	Format   string `yaml:"format" validate:"oneof=text json markdown"`
	NoColor  bool   `yaml:"no_color"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// CheckerOptions converts the rules section into checker options.
func (c *Config) CheckerOptions() convention.Options {
	return convention.Options{
		AllowPascalFilenames: c.Rules.AllowPascalFilenames,
		MaxExportsPerFile:    c.Rules.MaxExportsPerFile,
		Disabled:             c.Rules.Disabled,
	}
}
