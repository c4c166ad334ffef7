// Package convention checks front-end file and identifier naming conventions.
// Rules are independent functions over models.FileEntry; the Checker runs
// every enabled rule on every file and accumulates all violations.
package convention

import (
	"slices"

	"github.com/modu-ai/namelint/pkg/models"
)

// DefaultMaxExportsPerFile is the number of component or class exports a
// single component or class file may carry.
const DefaultMaxExportsPerFile = 1

// Options tunes the rules.
type Options struct {
	// AllowPascalFilenames accepts PascalCase file names for component and
	// class files in addition to kebab-case.
	AllowPascalFilenames bool

	// MaxExportsPerFile bounds rule exports-per-file. Values below 1 fall
	// back to DefaultMaxExportsPerFile.
	MaxExportsPerFile int

	// Disabled lists rules that are not evaluated.
	Disabled []models.RuleID
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{MaxExportsPerFile: DefaultMaxExportsPerFile}
}

func (o Options) maxExports() int {
	if o.MaxExportsPerFile < 1 {
		return DefaultMaxExportsPerFile
	}
	return o.MaxExportsPerFile
}

func (o Options) enabled(id models.RuleID) bool {
	return !slices.Contains(o.Disabled, id)
}

// ruleFunc evaluates one rule against one file.
type ruleFunc func(r *run, f *models.FileEntry) []models.Violation

// Rule is a single convention rule.
type Rule struct {
	ID          models.RuleID
	Description string
	check       ruleFunc
}

// RuleInfo describes a rule for listings.
type RuleInfo struct {
	ID          models.RuleID `json:"id"`
	Description string        `json:"description"`
}

// run carries the per-invocation state shared by rules.
type run struct {
	opts Options
	// badDirs records folders already reported, keyed by root and
	// root-relative path, so each offending folder is reported once per
	// invocation.
	badDirs map[string]bool
}
