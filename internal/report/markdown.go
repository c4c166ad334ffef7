package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/modu-ai/namelint/pkg/models"
)

const defaultWrapWidth = 100

type markdownRenderer struct {
	color bool
	width int
}

// Render writes a Markdown document. With colour it is rendered for the
// terminal through glamour.
func (m markdownRenderer) Render(w io.Writer, r *Report) error {
	doc := Markdown(r)
	if !m.color {
		_, err := io.WriteString(w, doc)
		return err
	}

	width := m.width
	if width <= 0 {
		width = defaultWrapWidth
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := tr.Render(doc)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// Markdown returns the report as a Markdown document.
func Markdown(r *Report) string {
	var sb strings.Builder
	sb.WriteString("# Naming convention report\n\n")

	groups := r.Groups()
	if len(groups) == 0 {
		fmt.Fprintf(&sb, "No naming violations in %s.\n", plural(r.Summary.Files, "file", "files"))
		return sb.String()
	}

	for _, g := range groups {
		fmt.Fprintf(&sb, "## `%s`\n\n", g.FilePath)
		sb.WriteString("| Rule | Message | Suggestion |\n")
		sb.WriteString("|------|---------|------------|\n")
		for _, v := range g.Violations {
			suggestion := ""
			if v.Suggestion != "" {
				suggestion = "`" + v.Suggestion + "`"
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", v.Rule, cell(v.Message), suggestion)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- Files checked: %d\n", r.Summary.Files)
	fmt.Fprintf(&sb, "- Files with violations: %d\n", len(groups))
	fmt.Fprintf(&sb, "- Violations: %d\n", r.Summary.Violations)

	rules := make([]models.RuleID, 0, len(r.Summary.ByRule))
	for id := range r.Summary.ByRule {
		rules = append(rules, id)
	}
	slices.Sort(rules)
	for _, id := range rules {
		fmt.Fprintf(&sb, "  - `%s`: %d\n", id, r.Summary.ByRule[id])
	}
	return sb.String()
}

// cell escapes text for a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
