package convention

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/namelint/pkg/models"
)

// Checker applies the convention rules to a sequence of files.
// A Checker holds no state between calls to Check.
type Checker struct {
	opts   Options
	rules  []Rule
	logger *slog.Logger
}

// NewChecker creates a Checker with the full rule catalogue.
func NewChecker(opts Options, logger *slog.Logger) *Checker {
	return newCheckerWithRules(opts, logger, catalogue())
}

func newCheckerWithRules(opts Options, logger *slog.Logger, rules []Rule) *Checker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{opts: opts, rules: rules, logger: logger}
}

// Check evaluates every enabled rule on every file and returns all
// violations, ordered by file then by rule. It never stops at the first
// problem and never fails: a rule that panics is reported as a rule-error
// violation for that file and the remaining rules still run.
func (c *Checker) Check(files []models.FileEntry) []models.Violation {
	r := &run{opts: c.opts, badDirs: make(map[string]bool)}

	var violations []models.Violation
	for i := range files {
		f := &files[i]
		for _, rule := range c.rules {
			if !c.opts.enabled(rule.ID) {
				continue
			}
			violations = append(violations, c.evaluate(r, rule, f)...)
		}
	}

	c.logger.Debug("convention check finished", "files", len(files), "violations", len(violations))
	return violations
}

// evaluate runs a single rule, converting a panic into a violation.
func (c *Checker) evaluate(r *run, rule Rule, f *models.FileEntry) (out []models.Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			c.logger.Error("rule evaluation failed", "rule", rule.ID, "path", f.Path, "panic", rec)
			out = []models.Violation{{
				FilePath: f.Location(),
				Rule:     models.RuleError,
				Message:  fmt.Sprintf("rule %s could not be evaluated: %v", rule.ID, rec),
			}}
		}
	}()
	return rule.check(r, f)
}

// Check is a convenience wrapper around NewChecker(opts, nil).Check(files).
func Check(files []models.FileEntry, opts Options) []models.Violation {
	return NewChecker(opts, nil).Check(files)
}

// Rules returns the rule catalogue in evaluation order.
func Rules() []RuleInfo {
	rules := catalogue()
	infos := make([]RuleInfo, len(rules))
	for i, r := range rules {
		infos[i] = RuleInfo{ID: r.ID, Description: r.Description}
	}
	return infos
}

// IsKnownRule reports whether id names a rule of the catalogue.
func IsKnownRule(id models.RuleID) bool {
	for _, r := range catalogue() {
		if r.ID == id {
			return true
		}
	}
	return false
}
