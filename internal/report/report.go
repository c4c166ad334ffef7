// Package report renders convention violations as text, JSON or Markdown
// and derives the process exit code.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/modu-ai/namelint/pkg/models"
)

// Format selects a renderer.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat indicates a format name no renderer handles.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatMarkdown}
}

// ParseFormat resolves a format name, case-insensitively. "md" is accepted
// for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Summary aggregates a run.
type Summary struct {
	Files      int                   `json:"files"`
	Violations int                   `json:"violations"`
	ByRule     map[models.RuleID]int `json:"byRule"`
}

// Report is the outcome of checking a set of files.
type Report struct {
	Violations []models.Violation `json:"violations"`
	Summary    Summary            `json:"summary"`
}

// New builds a Report for files checked files.
func New(files int, violations []models.Violation) *Report {
	if violations == nil {
		violations = []models.Violation{}
	}
	byRule := make(map[models.RuleID]int)
	for _, v := range violations {
		byRule[v.Rule]++
	}
	return &Report{
		Violations: violations,
		Summary: Summary{
			Files:      files,
			Violations: len(violations),
			ByRule:     byRule,
		},
	}
}

// Failed reports whether any violation was found.
func (r *Report) Failed() bool {
	return len(r.Violations) > 0
}

// ExitCode is 0 for a clean run and 1 otherwise.
func (r *Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Groups returns the violations grouped by file, in first-seen order.
func (r *Report) Groups() []Group {
	var groups []Group
	index := make(map[string]int)
	for _, v := range r.Violations {
		i, ok := index[v.FilePath]
		if !ok {
			i = len(groups)
			index[v.FilePath] = i
			groups = append(groups, Group{FilePath: v.FilePath})
		}
		groups[i].Violations = append(groups[i].Violations, v)
	}
	return groups
}

// Group holds the violations of one file.
type Group struct {
	FilePath   string
	Violations []models.Violation
}

// Renderer writes a Report.
type Renderer interface {
	Render(w io.Writer, r *Report) error
}

// Options configures NewRenderer.
type Options struct {
	Format Format
	// Color enables terminal styling: lipgloss for text, glamour for markdown.
	Color bool
	// Width wraps glamour output; 0 means 100 columns.
	Width int
}

// NewRenderer returns the renderer for opts.Format.
func NewRenderer(opts Options) (Renderer, error) {
	switch opts.Format {
	case FormatText, "":
		return newTextRenderer(opts.Color), nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatMarkdown:
		return markdownRenderer{color: opts.Color, width: opts.Width}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// suggestionNote returns the suggestion when the message does not already
// carry it.
func suggestionNote(v models.Violation) string {
	if v.Suggestion == "" || strings.Contains(v.Message, v.Suggestion) {
		return ""
	}
	return v.Suggestion
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
